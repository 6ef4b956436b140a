package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luiarhs/trivia-api/internal/trivia"
)

// CategoryRepository implements trivia.CategoryStore on Postgres. Categories
// are seeded externally; this repository only reads them.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

var _ trivia.CategoryStore = (*CategoryRepository)(nil)

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// List returns all categories ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, type FROM category ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []trivia.Category{}
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	return categories, nil
}

// GetByID returns one category or trivia.ErrNotFound.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (trivia.Category, error) {
	var c trivia.Category
	err := r.pool.QueryRow(ctx, "SELECT id, type FROM category WHERE id = $1", id).
		Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Category{}, trivia.ErrNotFound
		}
		return trivia.Category{}, fmt.Errorf("query category %d: %w", id, err)
	}
	return c, nil
}

// ResolveByName maps a category name to its record, case-insensitively.
// If duplicate names ever slip into the data, the lowest id wins so
// resolution stays deterministic.
func (r *CategoryRepository) ResolveByName(ctx context.Context, name string) (trivia.Category, error) {
	var c trivia.Category
	err := r.pool.QueryRow(ctx,
		"SELECT id, type FROM category WHERE lower(type) = lower($1) ORDER BY id LIMIT 1",
		name,
	).Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Category{}, trivia.ErrNotFound
		}
		return trivia.Category{}, fmt.Errorf("resolve category %q: %w", name, err)
	}
	return c, nil
}
