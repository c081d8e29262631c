package handlers

import (
	"github.com/rogerio-castellano/catalog-tracker/internal/models"
	"github.com/rogerio-castellano/catalog-tracker/internal/stats"
)

type ProductRequest struct {
	Name        string   `json:"nome"`
	Description string   `json:"descricao,omitempty"`
	Price       *float64 `json:"preco"`
	CategoryID  *int     `json:"categoriaId"`
}

type ProductResponse struct {
	Id           int      `json:"id"`
	Name         string   `json:"nome"`
	Description  string   `json:"descricao,omitempty"`
	Price        *float64 `json:"preco"`
	CategoryID   *int     `json:"categoriaId"`
	CategoryName string   `json:"categoriaNome,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
}

type CategoryRequest struct {
	Name string `json:"nome"`
}

type CategoryResponse struct {
	Id       int               `json:"id"`
	Name     string            `json:"nome"`
	Count    int               `json:"quantidade"`
	Products []ProductResponse `json:"produtos"`
}

// DashboardResponse is the summary plus the most recently added products.
type DashboardResponse struct {
	stats.Summary
	RecentProducts []ProductResponse `json:"produtosRecentes"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}
	return resp
}
