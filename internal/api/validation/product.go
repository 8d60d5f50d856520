package validation

import "strings"

// ProductInput mirrors the writable fields of a product request.
type ProductInput struct {
	Name     string
	Price    float64
	Currency string
	Stock    int
}

// ValidateProductInput validates the fields of a create or update product
// request.
func ValidateProductInput(req ProductInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(req.Name) > 200 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 200 characters"})
	}

	if req.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "price must not be negative"})
	}

	if req.Currency != "" && len(req.Currency) != 3 {
		errs = append(errs, FieldError{Field: "currency", Message: "currency must be a 3-letter code"})
	}

	if req.Stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "stock must not be negative"})
	}

	return errs
}
