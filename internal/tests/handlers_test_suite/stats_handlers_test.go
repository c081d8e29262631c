package handlers_test_suite

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/catalog-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/catalog-tracker/internal/http/router"
	"github.com/rogerio-castellano/catalog-tracker/internal/models"
	"github.com/rogerio-castellano/catalog-tracker/internal/stats"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestReportSummaryHandler_Empty(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	w := doJSON(r, http.MethodGet, "/relatorios/resumo", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var raw map[string]any
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	dist, ok := raw["produtosPorCategoria"].([]any)
	if !ok || len(dist) != 0 {
		t.Errorf("expected empty distribution array, got %v", raw["produtosPorCategoria"])
	}
	if raw["totalProdutos"].(float64) != 0 || raw["valorMedio"].(float64) != 0 {
		t.Errorf("expected zeroed summary, got %v", raw)
	}
}

func TestReportSummaryHandler_MixedCatalog(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	a, _ := createCategory(r, "A")
	createProduct(r, handler.ProductRequest{Name: "p1", Price: floatPtr(100), CategoryID: intPtr(a.Id)})
	createProduct(r, handler.ProductRequest{Name: "p2", Price: floatPtr(200), CategoryID: intPtr(a.Id)})
	createProduct(r, handler.ProductRequest{Name: "p3", Price: floatPtr(50)})

	w := doJSON(r, http.MethodGet, "/relatorios/resumo", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var s stats.Summary
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if s.TotalProducts != 3 || s.TotalCategories != 1 || s.UncategorizedCount != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if !almostEqual(s.AveragePrice, 350.0/3) || s.MaxPrice != 200 || s.MinPrice != 50 || s.TotalInventoryValue != 350 {
		t.Errorf("unexpected prices: %+v", s)
	}
	if len(s.Distribution) != 1 || s.Distribution[0].Category != "A" || s.Distribution[0].Count != 2 ||
		!almostEqual(s.Distribution[0].Percentage, 200.0/3) {
		t.Errorf("unexpected distribution: %+v", s.Distribution)
	}
}

func TestReportSummaryHandler_DanglingReference(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	a, _ := createCategory(r, "A")
	createProduct(r, handler.ProductRequest{Name: "p1", Price: floatPtr(10), CategoryID: intPtr(a.Id)})

	// The API refuses unknown categories; seed the dangling reference directly.
	dangling := 99
	if _, err := productRepo.Create(context.Background(), models.Product{Name: "órfão", CategoryID: &dangling}); err != nil {
		t.Fatal(err)
	}

	w := doJSON(r, http.MethodGet, "/relatorios/resumo", nil)
	var s stats.Summary
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if s.TotalProducts != 2 || s.UncategorizedCount != 0 {
		t.Errorf("expected dangling reference to count as categorized, got %+v", s)
	}
	sum := 0
	for _, d := range s.Distribution {
		sum += d.Count
	}
	if sum != 1 {
		t.Errorf("expected distribution to sum to 1, got %d", sum)
	}
	if s.MinPrice != 0 {
		t.Errorf("expected missing price to count as zero, got %v", s.MinPrice)
	}
}

func TestDashboardHandler_RecentProducts(t *testing.T) {
	t.Cleanup(clearAll)
	t.Cleanup(func() { handler.SetRecentLimit(stats.DefaultRecentLimit) })
	r := router.NewRouter()

	for _, name := range []string{"p1", "p2", "p3", "p4"} {
		createProduct(r, handler.ProductRequest{Name: name, Price: floatPtr(10)})
	}
	handler.SetRecentLimit(3)

	w := doJSON(r, http.MethodGet, "/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.DashboardResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.TotalProducts != 4 || resp.TotalInventoryValue != 40 {
		t.Errorf("unexpected summary: %+v", resp.Summary)
	}
	want := []string{"p4", "p3", "p2"}
	if len(resp.RecentProducts) != len(want) {
		t.Fatalf("expected %d recent products, got %d", len(want), len(resp.RecentProducts))
	}
	for i, name := range want {
		if resp.RecentProducts[i].Name != name {
			t.Errorf("recent[%d]: expected %s, got %s", i, name, resp.RecentProducts[i].Name)
		}
	}
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	r := router.NewRouter()

	if w := doJSON(r, http.MethodGet, "/healthz", nil); w.Code != http.StatusOK {
		t.Errorf("expected healthz 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/metrics", nil); w.Code != http.StatusOK {
		t.Errorf("expected metrics 200, got %d", w.Code)
	}
}

func TestSummaryEndpoints_HugePricesRejected(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter()

	for i := 0; i < 2; i++ {
		if w := createProduct(r, handler.ProductRequest{Name: "Iate", Price: floatPtr(1e308)}); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for oversized price, got %d", w.Code)
		}
	}
	createProduct(r, handler.ProductRequest{Name: "Caro", Price: floatPtr(handler.MaxPrice)})
	createProduct(r, handler.ProductRequest{Name: "Caro 2", Price: floatPtr(handler.MaxPrice)})

	for _, path := range []string{"/relatorios/resumo", "/dashboard"} {
		w := doJSON(r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d: %s", path, w.Code, w.Body.String())
		}
	}

	w := doJSON(r, http.MethodGet, "/relatorios/resumo", nil)
	var s stats.Summary
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if s.TotalProducts != 2 || s.TotalInventoryValue != 2*handler.MaxPrice {
		t.Errorf("unexpected summary: %+v", s)
	}
}
