package handlers

import (
	"fmt"
	"strings"
)

// MaxPrice bounds a single product price so catalog totals stay finite.
const MaxPrice = 1_000_000_000.0

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "nome", Description: "Name is required"})
	}
	if p.Price != nil {
		switch {
		case *p.Price < 0:
			errs = append(errs, ValidationError{Field: "preco", Description: "Price cannot be negative"})
		case *p.Price > MaxPrice:
			errs = append(errs, ValidationError{Field: "preco", Description: fmt.Sprintf("Price cannot exceed %.2f", MaxPrice)})
		}
	}
	return errs
}

func validateCategory(c CategoryRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ValidationError{Field: "nome", Description: "Name is required"})
	}
	return errs
}
