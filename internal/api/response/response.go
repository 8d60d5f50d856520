// Package response holds the shared JSON response helpers. Every rejection
// is a JSON body with stable "error" and "message" fields; internal error
// text never reaches the caller.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error labels used in rejection bodies.
const (
	LabelUnauthorized = "Unauthorized"
	LabelForbidden    = "Forbidden"
	LabelNotFound     = "NotFound"
	LabelBadRequest   = "BadRequest"
	LabelConflict     = "Conflict"
	LabelInternal     = "InternalError"
)

// apiError is the wire shape of every rejection.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Err writes a rejection with the given status, error label and message.
func Err(w http.ResponseWriter, status int, label, message string) {
	JSON(w, status, apiError{Error: label, Message: message})
}

// Unauthorized writes a 401 rejection.
func Unauthorized(w http.ResponseWriter, message string) {
	Err(w, http.StatusUnauthorized, LabelUnauthorized, message)
}

// Forbidden writes a 403 rejection.
func Forbidden(w http.ResponseWriter, message string) {
	Err(w, http.StatusForbidden, LabelForbidden, message)
}

// NotFound writes a 404 rejection.
func NotFound(w http.ResponseWriter, message string) {
	Err(w, http.StatusNotFound, LabelNotFound, message)
}

// BadRequest writes a 400 rejection.
func BadRequest(w http.ResponseWriter, message string) {
	Err(w, http.StatusBadRequest, LabelBadRequest, message)
}

// Internal writes a 500 rejection with a generic message.
func Internal(w http.ResponseWriter, message string) {
	Err(w, http.StatusInternalServerError, LabelInternal, message)
}

// NoContent writes a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
