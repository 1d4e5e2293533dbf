// Package handlers holds the shared HTTP request and response helpers used
// by every handler package.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondJSON writes dst as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, code int, dst interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if dst != nil {
		_ = json.NewEncoder(w).Encode(dst)
	}
}

// RespondError writes a JSON error body with the given status code.
func RespondError(w http.ResponseWriter, code int, msg string) {
	RespondJSON(w, code, ErrorResponse{Error: msg})
}

// RespondBadRequest writes a 400 with the given message.
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusBadRequest, msg)
}

// RespondUnauthorized writes a 401 with the given message.
func RespondUnauthorized(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusUnauthorized, msg)
}

// RespondForbidden writes a 403 with the given message.
func RespondForbidden(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusForbidden, msg)
}

// RespondNotFound writes a 404 with the given message.
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusNotFound, msg)
}

// RespondConflict writes a 409 with the given message.
func RespondConflict(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusConflict, msg)
}

// RespondInternalError writes a 500 with a generic message.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "terjadi kesalahan pada server")
}
