package http

import "net/http"

// healthzHandler reports liveness.
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

// readyzHandler reports readiness. Nothing is loaded lazily, so a process
// that serves requests is ready.
func readyzHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "ready")
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
