package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/rogerio-castellano/catalog-tracker/internal/db"
	handler "github.com/rogerio-castellano/catalog-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/catalog-tracker/internal/repo"
)

var database *sql.DB

func init() {
	setupTestRepos()
}

// setupTestRepos wires the SQL repositories. TEST_DB_DRIVER and
// TEST_DATABASE_URL select a PostgreSQL database; otherwise a throwaway
// SQLite file is used.
func setupTestRepos() {
	driver := os.Getenv("TEST_DB_DRIVER")
	dsn := os.Getenv("TEST_DATABASE_URL")
	if driver == "" || dsn == "" {
		dir, err := os.MkdirTemp("", "catalog-integrated-*")
		if err != nil {
			log.Fatal("❌ Could not create temp dir:", err)
		}
		driver, dsn = db.DriverSQLite, filepath.Join(dir, "catalog.db")
	}

	var err error
	database, err = db.Connect(driver, dsn)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	if err := db.Migrate(context.Background(), database, driver); err != nil {
		log.Fatal("❌ Could not migrate database:", err)
	}

	handler.SetProductRepo(repo.NewSQLProductRepository(database))
	handler.SetCategoryRepo(repo.NewSQLCategoryRepository(database))
}

func clearAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	for _, stmt := range []string{"DELETE FROM products", "DELETE FROM categories"} {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			fmt.Println(fmt.Errorf("failed to clear tables: %w", err))
		}
	}
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

func createCategory(r http.Handler, name string) (handler.CategoryResponse, error) {
	w := doJSON(r, http.MethodPost, "/categorias", handler.CategoryRequest{Name: name})
	if w.Code != http.StatusCreated {
		return handler.CategoryResponse{}, fmt.Errorf("create category %q: status %d: %s", name, w.Code, w.Body.String())
	}
	var c handler.CategoryResponse
	err := json.NewDecoder(w.Body).Decode(&c)
	return c, err
}

func createProduct(r http.Handler, p handler.ProductRequest) (handler.ProductResponse, error) {
	w := doJSON(r, http.MethodPost, "/produtos", p)
	if w.Code != http.StatusCreated {
		return handler.ProductResponse{}, fmt.Errorf("create product %q: status %d: %s", p.Name, w.Code, w.Body.String())
	}
	var resp handler.ProductResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}
