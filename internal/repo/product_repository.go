package repo

import (
	"context"

	"github.com/rogerio-castellano/catalog-tracker/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	GetByCategory(ctx context.Context, categoryID int) ([]models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id int) error
	// ClearCategory detaches every product from the given category.
	ClearCategory(ctx context.Context, categoryID int) error
}
