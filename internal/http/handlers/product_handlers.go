package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	models "github.com/rogerio-castellano/catalog-tracker/internal/models"
	"github.com/rogerio-castellano/catalog-tracker/internal/obs"
	repo "github.com/rogerio-castellano/catalog-tracker/internal/repo"
)

var errUnknownCategory = errors.New("category not found")

// productFromRequest builds the product to persist, resolving the category
// name. A zero category id is stored as no category.
func productFromRequest(ctx context.Context, req ProductRequest) (models.Product, error) {
	p := models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
	}
	if req.CategoryID == nil || *req.CategoryID == 0 {
		return p, nil
	}

	c, err := categoryRepo.GetByID(ctx, *req.CategoryID)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			return models.Product{}, errUnknownCategory
		}
		return models.Product{}, err
	}
	id := c.ID
	p.CategoryID = &id
	p.CategoryName = c.Name
	return p, nil
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog
// @Tags produtos
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /produtos [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product, err := productFromRequest(r.Context(), req)
	if err != nil {
		if errors.Is(err, errUnknownCategory) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		obs.Logger.Error("create_product_category_lookup", "error", err)
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	now := time.Now().Format(time.RFC3339)
	product.CreatedAt = now
	product.UpdatedAt = now

	created, err := productRepo.Create(r.Context(), product)
	if err != nil {
		obs.Logger.Error("create_product", "error", err)
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags produtos
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /produtos [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll(r.Context())
	if err != nil {
		obs.Logger.Error("list_products", "error", err)
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags produtos
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /produtos/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// GetProductsByCategoryHandler godoc
// @Summary List the products of a category
// @Tags produtos
// @Produce json
// @Param categoriaId path int true "Category ID"
// @Success 200 {array} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 500 {string} string "Internal error"
// @Router /produtos/categoria/{categoriaId} [get]
func GetProductsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "categoriaId")
	if err != nil {
		http.Error(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	products, err := productRepo.GetByCategory(r.Context(), id)
	if err != nil {
		obs.Logger.Error("list_products_by_category", "error", err, "category_id", id)
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags produtos
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /produtos/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product, err := productFromRequest(r.Context(), req)
	if err != nil {
		if errors.Is(err, errUnknownCategory) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		obs.Logger.Error("update_product_category_lookup", "error", err)
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	product.ID = id
	product.UpdatedAt = time.Now().Format(time.RFC3339)

	updated, err := productRepo.Update(r.Context(), product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		obs.Logger.Error("update_product", "error", err, "product_id", id)
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags produtos
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /produtos/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	if err := productRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
