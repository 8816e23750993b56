package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsc11539/amazon-shortener/internal/canonical"
	"github.com/tsc11539/amazon-shortener/internal/config"
)

type mapVars map[string]string

func (m mapVars) Var(name string) (string, error) {
	v, ok := m[name]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, config.ErrVarNotFound)
	}
	return v, nil
}

func testConfig() *config.Config {
	return &config.Config{
		RedirectHost:   canonical.DefaultHost,
		RequestTimeout: time.Second,
	}
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRootRedirects(t *testing.T) {
	h := NewRouter(testConfig(), mapVars{})

	rec := serve(t, h, "/?https://www.amazon.co.jp/Some-Product-Name/dp/B08XYZ1234/ref=sr_1_1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://amazon.co.jp/dp/B08XYZ1234/", rec.Header().Get("Location"))
}

func TestRootFirstMatchWins(t *testing.T) {
	h := NewRouter(testConfig(), mapVars{})

	rec := serve(t, h, "/?https://amazon.co.jp/dp/AAA111/other/dp/BBB222/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://amazon.co.jp/dp/AAA111/", rec.Header().Get("Location"))
}

func TestRootServesFormWithoutMatch(t *testing.T) {
	h := NewRouter(testConfig(), mapVars{})

	for _, target := range []string{"/", "/?https://example.com/no-match-here"} {
		rec := serve(t, h, target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), `<h1>`)
		assert.Contains(t, rec.Body.String(), `action="/shorten"`)
		assert.Contains(t, rec.Body.String(), `method="get"`)
		assert.Contains(t, rec.Body.String(), `name="q"`)
	}
}

func TestShorten(t *testing.T) {
	h := NewRouter(testConfig(), mapVars{})

	tests := []struct {
		name     string
		target   string
		status   int
		location string
	}{
		{"encoded", "/shorten?q=https%3A%2F%2Famazon.co.jp%2Fdp%2FB123%2F", http.StatusFound, "https://amazon.co.jp/dp/B123/"},
		{"plain", "/shorten?q=https://www.amazon.co.jp/x/dp/B08XYZ1234/ref=1", http.StatusFound, "https://amazon.co.jp/dp/B08XYZ1234/"},
		{"other params", "/shorten?lang=ja&q=%2Fdp%2FZZZ%2F", http.StatusFound, "https://amazon.co.jp/dp/ZZZ/"},
		{"no match", "/shorten?q=https%3A%2F%2Fexample.com%2F", http.StatusOK, ""},
		{"missing q", "/shorten", http.StatusOK, ""},
		{"bad escape", "/shorten?q=%zz", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestWorkerVersion(t *testing.T) {
	h := NewRouter(testConfig(), mapVars{config.VersionVar: "0.0.18"})

	rec := serve(t, h, "/worker-version")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.0.18", rec.Body.String())
}

func TestWorkerVersionMissing(t *testing.T) {
	h := NewRouter(testConfig(), mapVars{})

	rec := serve(t, h, "/worker-version")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestBrokenRedirectHost(t *testing.T) {
	cfg := testConfig()
	cfg.RedirectHost = "://broken"
	h := NewRouter(cfg, mapVars{})

	rec := serve(t, h, "/?/dp/ABC123/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	h := NewRouter(testConfig(), mapVars{})

	rec := serve(t, h, "/healthz")
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ready", serve(t, h, "/readyz").Body.String())
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
	h := NewRouter(cfg, mapVars{})

	assert.Equal(t, http.StatusOK, serve(t, h, "/healthz").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(t, h, "/healthz").Code)
}

type recordingRouter struct {
	patterns []string
}

func (r *recordingRouter) Get(pattern string, _ http.HandlerFunc) {
	r.patterns = append(r.patterns, pattern)
}

func TestRegisterUsesInjectedRouter(t *testing.T) {
	r := &recordingRouter{}
	Register(r, mapVars{}, canonical.Shortener{})

	sort.Strings(r.patterns)
	assert.Equal(t, []string{"/", "/shorten", "/worker-version"}, r.patterns)
}

func TestRequestURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://short.example/?x=1", nil)
	assert.Equal(t, "http://short.example/?x=1", requestURL(req))

	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://short.example/?x=1", requestURL(req))
}

func TestViewerLocation(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", viewerCoordinates(req))
	assert.Equal(t, unknownRegion, viewerRegion(req))

	req.Header.Set("CloudFront-Viewer-Latitude", "35.69")
	req.Header.Set("CloudFront-Viewer-Longitude", "139.69")
	req.Header.Set("CloudFront-Viewer-Country", "JP")
	req.Header.Set("CloudFront-Viewer-Country-Region-Name", "Tokyo")

	require.Equal(t, "35.69,139.69", viewerCoordinates(req))
	assert.Equal(t, "Tokyo", viewerRegion(req))
}
