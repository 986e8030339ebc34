package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"rift-rewind/internal/api"
	"rift-rewind/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps domain and upstream errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRewindNotFound):
		writeError(w, http.StatusNotFound, "rewind not found")
	case errors.Is(err, domain.ErrRewindExists):
		writeError(w, http.StatusConflict, "rewind already exists")
	case api.IsNotFound(err):
		writeError(w, http.StatusNotFound, "not found upstream")
	default:
		if apiErr, ok := rateLimited(err); ok {
			writeError(w, http.StatusTooManyRequests, apiErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func rateLimited(err error) (*api.Error, bool) {
	return api.IsRateLimited(err)
}
