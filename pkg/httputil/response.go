// Package httputil provides helpers for writing JSON HTTP responses.
package httputil

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the wire format for error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes data as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; nothing more can be done here.
			http.Error(w, "", http.StatusInternalServerError)
		}
	}
}

// Error writes an ErrorResponse with the given status.
func Error(w http.ResponseWriter, status int, code string, message string) {
	JSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
