// Package stats computes the catalog dashboard and report aggregates.
//
// Every function here is a pure function of the product and category
// snapshots it receives. Inputs are never mutated and no state is kept
// between calls.
package stats

import "github.com/rogerio-castellano/catalog-tracker/internal/models"

// DefaultRecentLimit is how many products the dashboards list as recent.
const DefaultRecentLimit = 5

// CategoryShare is the distribution entry of one category.
type CategoryShare struct {
	Category   string  `json:"categoria"`
	Count      int     `json:"quantidade"`
	Percentage float64 `json:"percentual"`
}

// Summary holds the derived catalog statistics. Values are raw numbers;
// formatting is left to the presentation layer.
type Summary struct {
	TotalProducts       int             `json:"totalProdutos"`
	TotalCategories     int             `json:"totalCategorias"`
	AveragePrice        float64         `json:"valorMedio"`
	UncategorizedCount  int             `json:"produtosSemCategoria"`
	MaxPrice            float64         `json:"produtoMaisCaro"`
	MinPrice            float64         `json:"produtoMaisBarato"`
	TotalInventoryValue float64         `json:"valorTotalEstoque"`
	Distribution        []CategoryShare `json:"produtosPorCategoria"`
}

// CategoryCount pairs a category with the number of products referencing it.
type CategoryCount struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	Count int    `json:"quantidade"`
}

// ComputeSummary aggregates products and categories into a Summary.
//
// Missing prices count as zero everywhere, including MinPrice. A category
// reference of zero counts as uncategorized; a non-zero reference to a
// category that does not exist is neither uncategorized nor part of any
// distribution bucket.
func ComputeSummary(products []models.Product, categories []models.Category) Summary {
	s := Summary{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
		Distribution:    make([]CategoryShare, 0, len(categories)),
	}

	for i, p := range products {
		price := p.PriceOrZero()
		s.TotalInventoryValue += price
		if i == 0 || price > s.MaxPrice {
			s.MaxPrice = price
		}
		if i == 0 || price < s.MinPrice {
			s.MinPrice = price
		}
		if !p.HasCategory() {
			s.UncategorizedCount++
		}
	}

	if s.TotalProducts > 0 {
		s.AveragePrice = s.TotalInventoryValue / float64(s.TotalProducts)
	}

	for _, c := range CategoryCounts(products, categories) {
		s.Distribution = append(s.Distribution, CategoryShare{
			Category:   c.Name,
			Count:      c.Count,
			Percentage: percentage(c.Count, s.TotalProducts),
		})
	}

	return s
}

// CategoryCounts counts, for each category in input order, the products whose
// category reference equals the category id.
func CategoryCounts(products []models.Product, categories []models.Category) []CategoryCount {
	counts := make([]CategoryCount, len(categories))
	for i, c := range categories {
		counts[i] = CategoryCount{ID: c.ID, Name: c.Name}
		for _, p := range products {
			if p.InCategory(c.ID) {
				counts[i].Count++
			}
		}
	}
	return counts
}

// RecentProducts returns the last n products, most recent first.
func RecentProducts(products []models.Product, n int) []models.Product {
	if n <= 0 || len(products) == 0 {
		return []models.Product{}
	}
	if n > len(products) {
		n = len(products)
	}
	recent := make([]models.Product, 0, n)
	for i := len(products) - 1; i >= len(products)-n; i-- {
		recent = append(recent, products[i])
	}
	return recent
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
