package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/rogerio-castellano/catalog-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/catalog-tracker/internal/http/router"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	cat, err := createCategory(r, "Eletrônicos")
	if err != nil {
		t.Fatal(err)
	}

	w := createProduct(r, handler.ProductRequest{
		Name:        "Laptop",
		Description: "Laptop para jogos",
		Price:       floatPtr(1500),
		CategoryID:  intPtr(cat.Id),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Laptop" {
		t.Errorf("expected name 'Laptop', got %v", resp.Name)
	}
	if resp.Price == nil || *resp.Price != 1500 {
		t.Errorf("expected price 1500, got %v", resp.Price)
	}
	if resp.CategoryName != "Eletrônicos" {
		t.Errorf("expected category name to be resolved, got %q", resp.CategoryName)
	}
	if resp.CreatedAt == "" {
		t.Error("expected createdAt to be set")
	}
}

func TestCreateProductHandler_OptionalFields(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Sem preço", CategoryID: intPtr(0)})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Price != nil {
		t.Errorf("expected missing price, got %v", *resp.Price)
	}
	if resp.CategoryID != nil {
		t.Errorf("expected zero category to be stored as none, got %v", *resp.CategoryID)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and negative price",
			payload:        handler.ProductRequest{Name: "", Price: floatPtr(-1)},
			expectedErrors: []string{"nome", "preco"},
		},
		{
			name:           "Blank name only",
			payload:        handler.ProductRequest{Name: "   ", Price: floatPtr(100)},
			expectedErrors: []string{"nome"},
		},
		{
			name:           "Negative price only",
			payload:        handler.ProductRequest{Name: "Mouse", Price: floatPtr(-5)},
			expectedErrors: []string{"preco"},
		},
		{
			name:           "Price above the maximum",
			payload:        handler.ProductRequest{Name: "Iate", Price: floatPtr(1e308)},
			expectedErrors: []string{"preco"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if len(resp) != len(tt.expectedErrors) {
				t.Errorf("expected %d errors, got %+v", len(tt.expectedErrors), resp)
			}
			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if err.Field == field {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_UnknownCategory(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Órfão", Price: floatPtr(10), CategoryID: intPtr(99)})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	badJSON := `{nome: "Invalid" preco: 100 "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/produtos", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestGetProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	createProduct(r, handler.ProductRequest{Name: "Mouse", Price: floatPtr(50)})
	createProduct(r, handler.ProductRequest{Name: "Teclado", Price: floatPtr(100)})

	w := doJSON(r, http.MethodGet, "/produtos", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp))
	}
	if resp[0].Name != "Mouse" || resp[1].Name != "Teclado" {
		t.Errorf("unexpected order: %q, %q", resp[0].Name, resp[1].Name)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Monitor", Price: floatPtr(900)})
	var created handler.ProductResponse
	_ = json.NewDecoder(w.Body).Decode(&created)

	tests := []struct {
		name       string
		path       string
		expectCode int
	}{
		{"existing", fmt.Sprintf("/produtos/%d", created.Id), http.StatusOK},
		{"missing", "/produtos/999", http.StatusNotFound},
		{"invalid id", "/produtos/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodGet, tt.path, nil)
			if w.Code != tt.expectCode {
				t.Errorf("expected %d, got %d", tt.expectCode, w.Code)
			}
		})
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	cat, err := createCategory(r, "Periféricos")
	if err != nil {
		t.Fatal(err)
	}
	w := createProduct(r, handler.ProductRequest{Name: "Mouse", Price: floatPtr(50)})
	var created handler.ProductResponse
	_ = json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/produtos/%d", created.Id), handler.ProductRequest{
		Name:       "Mouse Gamer",
		Price:      floatPtr(80),
		CategoryID: intPtr(cat.Id),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var updated handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.Name != "Mouse Gamer" || *updated.Price != 80 {
		t.Errorf("unexpected updated product: %+v", updated)
	}
	if updated.CategoryID == nil || *updated.CategoryID != cat.Id || updated.CategoryName != "Periféricos" {
		t.Errorf("expected category %d, got %+v", cat.Id, updated)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Errorf("expected createdAt to be preserved, got %q want %q", updated.CreatedAt, created.CreatedAt)
	}

	w = doJSON(r, http.MethodPut, "/produtos/999", handler.ProductRequest{Name: "x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing product, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Cabo", Price: floatPtr(5)})
	var created handler.ProductResponse
	_ = json.NewDecoder(w.Body).Decode(&created)

	path := fmt.Sprintf("/produtos/%d", created.Id)
	if w := doJSON(r, http.MethodDelete, path, nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, path, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestGetProductsByCategoryHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	a, _ := createCategory(r, "A")
	b, _ := createCategory(r, "B")
	createProduct(r, handler.ProductRequest{Name: "p1", CategoryID: intPtr(a.Id)})
	createProduct(r, handler.ProductRequest{Name: "p2", CategoryID: intPtr(b.Id)})
	createProduct(r, handler.ProductRequest{Name: "p3", CategoryID: intPtr(a.Id)})

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/produtos/categoria/%d", a.Id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []handler.ProductResponse
	_ = json.NewDecoder(w.Body).Decode(&resp)
	if len(resp) != 2 || resp[0].Name != "p1" || resp[1].Name != "p3" {
		t.Errorf("unexpected products: %+v", resp)
	}

	if w := doJSON(r, http.MethodGet, "/produtos/categoria/x", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid id, got %d", w.Code)
	}
}
