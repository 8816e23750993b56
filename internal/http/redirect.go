package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tsc11539/amazon-shortener/internal/canonical"
)

// root inspects the whole request URL, so /?https://www.amazon.co.jp/...
// works without any encoding.
func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	h.redirectOrForm(w, r, requestURL(r))
}

func (h *handlers) shorten(w http.ResponseWriter, r *http.Request) {
	decoded, err := canonical.Decode(rawQueryValue(r.URL.RawQuery, "q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.redirectOrForm(w, r, decoded)
}

func (h *handlers) redirectOrForm(w http.ResponseWriter, r *http.Request, input string) {
	logrus.WithField("url", input).Debug("Inspecting url")

	target, ok, err := h.shortener.Resolve(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		writeForm(w)
		return
	}

	http.Redirect(w, r, target.String(), http.StatusFound)
}

// requestURL rebuilds the absolute URL the client asked for.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	} else if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

// rawQueryValue returns the first undecoded value for key.
func rawQueryValue(rawQuery, key string) string {
	for _, pair := range strings.Split(rawQuery, "&") {
		k, v, _ := strings.Cut(pair, "=")
		if k == key {
			return v
		}
	}
	return ""
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var decErr *canonical.DecodingError
	if errors.As(err, &decErr) {
		status = http.StatusBadRequest
	}

	entry := logrus.WithFields(logrus.Fields{
		"path":  r.URL.Path,
		"error": err.Error(),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Rejected request")
	}

	http.Error(w, http.StatusText(status)+": "+err.Error(), status)
}
