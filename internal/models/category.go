package models

// Category is a named grouping that products may reference.
type Category struct {
	ID       int       `json:"id"`
	Name     string    `json:"nome"`
	Products []Product `json:"produtos,omitempty"`
}
