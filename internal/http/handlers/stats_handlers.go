package handlers

import (
	"fmt"
	"net/http"

	models "github.com/rogerio-castellano/catalog-tracker/internal/models"
	"github.com/rogerio-castellano/catalog-tracker/internal/obs"
	"github.com/rogerio-castellano/catalog-tracker/internal/stats"
)

// loadSnapshot reads the current products and categories for one summary.
func loadSnapshot(r *http.Request) ([]models.Product, []models.Category, error) {
	products, err := productRepo.GetAll(r.Context())
	if err != nil {
		return nil, nil, fmt.Errorf("load products: %w", err)
	}
	categories, err := categoryRepo.GetAll(r.Context())
	if err != nil {
		return nil, nil, fmt.Errorf("load categories: %w", err)
	}
	return products, categories, nil
}

func summarize(surface string, products []models.Product, categories []models.Category) stats.Summary {
	obs.SummaryComputations.WithLabelValues(surface).Inc()
	obs.CatalogSize.WithLabelValues("products").Set(float64(len(products)))
	obs.CatalogSize.WithLabelValues("categories").Set(float64(len(categories)))
	return stats.ComputeSummary(products, categories)
}

// GetReportSummaryHandler godoc
// @Summary Catalog report summary
// @Description Aggregated statistics over every product and category
// @Tags relatorios
// @Produce json
// @Success 200 {object} stats.Summary
// @Failure 500 {string} string "Internal error"
// @Router /relatorios/resumo [get]
func GetReportSummaryHandler(w http.ResponseWriter, r *http.Request) {
	products, categories, err := loadSnapshot(r)
	if err != nil {
		obs.Logger.Error("report_summary", "error", err)
		http.Error(w, "could not compute summary", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summarize("report", products, categories))
}

// GetDashboardHandler godoc
// @Summary Dashboard
// @Description Catalog summary plus the most recently added products
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {string} string "Internal error"
// @Router /dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	products, categories, err := loadSnapshot(r)
	if err != nil {
		obs.Logger.Error("dashboard", "error", err)
		http.Error(w, "could not compute dashboard", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, DashboardResponse{
		Summary:        summarize("dashboard", products, categories),
		RecentProducts: toProductResponses(stats.RecentProducts(products, recentLimit)),
	})
}
