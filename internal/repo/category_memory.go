package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/catalog-tracker/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of CategoryRepository.
type InMemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories []models.Category
	nextID     int
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: []models.Category{},
		nextID:     1,
	}
}

func (r *InMemoryCategoryRepository) Create(_ context.Context, category models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == category.Name {
			return models.Category{}, ErrDuplicatedValueUnique
		}
	}

	category.ID = r.nextID
	category.Products = nil
	r.nextID++
	r.categories = append(r.categories, category)
	return category, nil
}

func (r *InMemoryCategoryRepository) GetAll(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]models.Category, len(r.categories))
	copy(categories, r.categories)
	return categories, nil
}

func (r *InMemoryCategoryRepository) GetByID(_ context.Context, id int) (models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) GetByName(_ context.Context, name string) (models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories = []models.Category{}
}
