// Package validation checks request field constraints before they reach a
// repository. Validators return a list of per-field problems; an empty
// list means the request is acceptable.
package validation

import "strings"

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Join flattens field errors into one human-readable message.
func Join(errs []FieldError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Message
	}
	return strings.Join(parts, "; ")
}
