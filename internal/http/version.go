package http

import (
	"net/http"

	"github.com/tsc11539/amazon-shortener/internal/config"
)

func (h *handlers) workerVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.vars.Var(config.VersionVar)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeText(w, http.StatusOK, version)
}
