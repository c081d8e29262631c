package models

// Product represents a catalog item. Price and CategoryID are optional:
// a nil Price means the price was never informed and a nil (or zero)
// CategoryID means the product is uncategorized.
type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"nome"`
	Description  string   `json:"descricao,omitempty"`
	Price        *float64 `json:"preco"`
	CategoryID   *int     `json:"categoriaId"`
	CategoryName string   `json:"categoriaNome,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
}

// PriceOrZero returns the product price, treating a missing price as zero.
func (p Product) PriceOrZero() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// HasCategory reports whether the product carries a category reference.
// Zero is treated as "no category", the same as a missing reference.
func (p Product) HasCategory() bool {
	return p.CategoryID != nil && *p.CategoryID != 0
}

// InCategory reports whether the product references the given category id.
func (p Product) InCategory(id int) bool {
	return p.CategoryID != nil && *p.CategoryID == id
}
