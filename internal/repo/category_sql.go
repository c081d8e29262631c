package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/catalog-tracker/internal/models"
)

type SQLCategoryRepository struct {
	db *sql.DB
}

func NewSQLCategoryRepository(db *sql.DB) *SQLCategoryRepository {
	return &SQLCategoryRepository{db: db}
}

func (r *SQLCategoryRepository) Create(ctx context.Context, c models.Category) (models.Category, error) {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, c.Name).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Category{}, ErrDuplicatedValueUnique
		}
		return models.Category{}, fmt.Errorf("insert category: %w", err)
	}
	c.Products = nil
	return c, nil
}

func (r *SQLCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *SQLCategoryRepository) GetByID(ctx context.Context, id int) (models.Category, error) {
	return r.getOne(ctx, `SELECT id, name FROM categories WHERE id = $1`, id)
}

func (r *SQLCategoryRepository) GetByName(ctx context.Context, name string) (models.Category, error) {
	return r.getOne(ctx, `SELECT id, name FROM categories WHERE name = $1`, name)
}

func (r *SQLCategoryRepository) getOne(ctx context.Context, query string, arg any) (models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var c models.Category
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	return c, err
}

func (r *SQLCategoryRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM categories WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
