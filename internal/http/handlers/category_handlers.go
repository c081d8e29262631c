package handlers

import (
	"errors"
	"net/http"
	"strings"

	models "github.com/rogerio-castellano/catalog-tracker/internal/models"
	"github.com/rogerio-castellano/catalog-tracker/internal/obs"
	repo "github.com/rogerio-castellano/catalog-tracker/internal/repo"
	"github.com/rogerio-castellano/catalog-tracker/internal/stats"
)

func toCategoryResponse(c models.Category, count int, products []models.Product) CategoryResponse {
	return CategoryResponse{
		Id:       c.ID,
		Name:     c.Name,
		Count:    count,
		Products: toProductResponses(products),
	}
}

// CreateCategoryHandler godoc
// @Summary Create a new category
// @Tags categorias
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category to add"
// @Success 201 {object} CategoryResponse
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "Category name duplicated"
// @Failure 500 {string} string "Internal error"
// @Router /categorias [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateCategory(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := categoryRepo.Create(r.Context(), models.Category{Name: strings.TrimSpace(req.Name)})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create category: category name duplicated", http.StatusConflict)
			return
		}
		obs.Logger.Error("create_category", "error", err)
		http.Error(w, "could not create category", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(created, 0, nil))
}

// GetCategoriesHandler godoc
// @Summary List all categories with their products
// @Tags categorias
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 500 {string} string "Internal error"
// @Router /categorias [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	products, categories, err := loadSnapshot(r)
	if err != nil {
		obs.Logger.Error("list_categories", "error", err)
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}

	byCategory := make(map[int][]models.Product, len(categories))
	for _, p := range products {
		if p.CategoryID != nil {
			byCategory[*p.CategoryID] = append(byCategory[*p.CategoryID], p)
		}
	}

	counts := stats.CategoryCounts(products, categories)
	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toCategoryResponse(c, counts[i].Count, byCategory[c.ID])
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCategoryByIDHandler godoc
// @Summary Get category by ID
// @Tags categorias
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /categorias/{id} [get]
func GetCategoryByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	category, err := categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch category", http.StatusInternalServerError)
		return
	}

	products, err := productRepo.GetByCategory(r.Context(), id)
	if err != nil {
		http.Error(w, "could not fetch category", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(category, len(products), products))
}

// DeleteCategoryHandler godoc
// @Summary Delete a category
// @Description Products referencing the category become uncategorized
// @Tags categorias
// @Param id path int true "Category ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /categorias/{id} [delete]
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	if _, err := categoryRepo.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete category", http.StatusInternalServerError)
		return
	}

	if err := productRepo.ClearCategory(r.Context(), id); err != nil {
		obs.Logger.Error("clear_category", "error", err, "category_id", id)
		http.Error(w, "could not delete category", http.StatusInternalServerError)
		return
	}
	if err := categoryRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete category", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
