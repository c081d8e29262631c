package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/catalog-tracker/internal/models"
)

const queryTimeout = 3 * time.Second

// Queries only use positional $n placeholders and RETURNING so the same
// statements run on PostgreSQL and SQLite.
const selectProducts = `
	SELECT p.id, p.name, p.description, p.price, p.category_id, COALESCE(c.name, ''), p.created_at, p.updated_at
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

// SQLProductRepository implements ProductRepository on top of database/sql.
type SQLProductRepository struct {
	db *sql.DB
}

func NewSQLProductRepository(db *sql.DB) *SQLProductRepository {
	return &SQLProductRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p          models.Product
		price      sql.NullFloat64
		categoryID sql.NullInt64
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &categoryID, &p.CategoryName, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return models.Product{}, err
	}
	if price.Valid {
		v := price.Float64
		p.Price = &v
	}
	if categoryID.Valid {
		v := int(categoryID.Int64)
		p.CategoryID = &v
	}
	return p, nil
}

func (r *SQLProductRepository) query(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *SQLProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, description, price, category_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Price, p.CategoryID, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return models.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *SQLProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.query(ctx, selectProducts+` ORDER BY p.id`)
}

func (r *SQLProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, selectProducts+` WHERE p.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *SQLProductRepository) GetByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	return r.query(ctx, selectProducts+` WHERE p.category_id = $1 ORDER BY p.id`, categoryID)
}

func (r *SQLProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, description = $2, price = $3, category_id = $4, updated_at = $5 WHERE id = $6 RETURNING created_at`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Price, p.CategoryID, p.UpdatedAt, p.ID).Scan(&p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("update product %d: %w", p.ID, err)
	}
	return p, nil
}

func (r *SQLProductRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *SQLProductRepository) ClearCategory(ctx context.Context, categoryID int) error {
	query := `UPDATE products SET category_id = NULL WHERE category_id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, categoryID)
	return err
}
