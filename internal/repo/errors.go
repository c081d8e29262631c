package repo

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found in the repository.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicatedValueUnique is returned when a write violates a unique constraint.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// modernc.org/sqlite reports constraint failures only through the message.
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
