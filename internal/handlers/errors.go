package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body shape shared by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Username already exists
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
