package utils

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError writes a JSON error body. err may be nil when there is no
// underlying cause worth exposing.
func WriteError(w http.ResponseWriter, status int, message string, err error) {
	resp := errorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	WriteJSON(w, status, resp)
}
