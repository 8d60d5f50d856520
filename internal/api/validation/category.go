package validation

import "strings"

// CategoryInput mirrors the writable fields of a category request.
type CategoryInput struct {
	Name string
}

// ValidateCategoryInput validates the fields of a create or update
// category request.
func ValidateCategoryInput(req CategoryInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(req.Name) > 200 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 200 characters"})
	}

	return errs
}
