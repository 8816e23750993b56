package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimiter rejects requests beyond requestsPerSecond with 429.
// The bucket is shared by all clients.
func RateLimiter(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logrus.WithFields(logrus.Fields{
					"client_ip":  r.RemoteAddr,
					"path":       r.URL.Path,
					"request_id": middleware.GetReqID(r.Context()),
				}).Warn("Rate limit exceeded")

				http.Error(w, fmt.Sprintf("Too many requests. Limit: %.1f requests per second", requestsPerSecond), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
