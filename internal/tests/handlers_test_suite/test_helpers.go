package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	handler "github.com/rogerio-castellano/catalog-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/catalog-tracker/internal/repo"
)

var (
	productRepo  *repo.InMemoryProductRepository
	categoryRepo *repo.InMemoryCategoryRepository
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	categoryRepo = repo.NewInMemoryCategoryRepository()
	handler.SetCategoryRepo(categoryRepo)
}

func clearAll() {
	productRepo.Clear()
	categoryRepo.Clear()
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/produtos", p)
}

func createCategory(r http.Handler, name string) (handler.CategoryResponse, error) {
	w := doJSON(r, http.MethodPost, "/categorias", handler.CategoryRequest{Name: name})
	if w.Code != http.StatusCreated {
		return handler.CategoryResponse{}, fmt.Errorf("create category %q: status %d: %s", name, w.Code, w.Body.String())
	}
	var c handler.CategoryResponse
	err := json.NewDecoder(w.Body).Decode(&c)
	return c, err
}
