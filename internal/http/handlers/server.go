package handlers

import (
	repo "github.com/rogerio-castellano/catalog-tracker/internal/repo"
	"github.com/rogerio-castellano/catalog-tracker/internal/stats"
)

var (
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository

	recentLimit = stats.DefaultRecentLimit
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

// SetRecentLimit sets how many products the dashboard lists as recent.
func SetRecentLimit(n int) {
	recentLimit = n
}
