// Package catalog is the HTTP client the CLI uses to read the catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/catalog-tracker/internal/models"
)

// Client reads products and categories from the catalog REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Snapshot is one read of both collections. A collection whose fetch failed
// is empty, never nil.
type Snapshot struct {
	Products   []models.Product
	Categories []models.Category
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/produtos", &products); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/categorias", &categories); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// Snapshot fetches both collections. It always returns a usable snapshot;
// the error joins whatever fetches failed.
func (c *Client) Snapshot(ctx context.Context) (Snapshot, error) {
	s := Snapshot{Products: []models.Product{}, Categories: []models.Category{}}

	products, perr := c.Products(ctx)
	if perr == nil {
		s.Products = products
	}
	categories, cerr := c.Categories(ctx)
	if cerr == nil {
		s.Categories = categories
	}
	return s, errors.Join(perr, cerr)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
