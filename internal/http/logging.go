package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const unknownRegion = "unknown region"

// RequestLogger logs every request together with the viewer location the
// CDN in front of the service reports.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		fields := logrus.Fields{
			"timestamp":   start.Format(time.RFC3339Nano),
			"request_id":  middleware.GetReqID(r.Context()),
			"method":      r.Method,
			"path":        r.URL.Path,
			"status_code": ww.Status(),
			"latency_ms":  float64(time.Since(start).Nanoseconds()) / 1e6,
			"client_ip":   r.RemoteAddr,
			"coordinates": viewerCoordinates(r),
			"region":      viewerRegion(r),
		}

		entry := logrus.WithFields(fields)
		switch status := ww.Status(); {
		case status >= 500:
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		case status >= 300:
			entry.Info("Redirect")
		default:
			entry.Info("Request completed")
		}
	})
}

// viewerCoordinates returns "lat,long" or an empty string.
func viewerCoordinates(r *http.Request) string {
	lat := r.Header.Get("CloudFront-Viewer-Latitude")
	long := r.Header.Get("CloudFront-Viewer-Longitude")
	if lat == "" || long == "" {
		return ""
	}
	return lat + "," + long
}

func viewerRegion(r *http.Request) string {
	for _, h := range []string{"CloudFront-Viewer-Country-Region-Name", "CloudFront-Viewer-Country", "CF-IPCountry"} {
		if v := r.Header.Get(h); v != "" {
			return v
		}
	}
	return unknownRegion
}
