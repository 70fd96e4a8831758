package handlers

import (
	"net/http"
)

// Health is the liveness probe. It names the service so a dashboard polling
// several backends can tell the responses apart.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{
		"status":  "ok",
		"service": "logistics-dashboard",
	}
	writeJSON(w, r, http.StatusOK, res)
}
