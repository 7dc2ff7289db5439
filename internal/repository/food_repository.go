package repository

import (
	"context"
	"errors"
	"fmt"

	"foodiehaven/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrFoodNotFound signals that an id matched no row.
var ErrFoodNotFound = errors.New("food not found")

// FoodRepository is the store contract for the catalog. Ids travel as raw
// path-parameter strings; the store is the first place they are interpreted
// as numbers.
type FoodRepository interface {
	List(ctx context.Context) ([]model.Food, error)
	GetByID(ctx context.Context, id string) (*model.Food, error)
	Create(ctx context.Context, f model.Food) (*model.Food, error)
	Update(ctx context.Context, id string, f model.Food) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]model.Food, error)
}

const foodColumns = "id, name, category, price, description, image, in_stock, created_at"

// PostgresFoodRepository implements FoodRepository over a pgx pool. Every
// operation is a single parameterized statement.
type PostgresFoodRepository struct {
	db *pgxpool.Pool
}

func NewPostgresFoodRepository(db *pgxpool.Pool) *PostgresFoodRepository {
	return &PostgresFoodRepository{db: db}
}

func (r *PostgresFoodRepository) List(ctx context.Context) ([]model.Food, error) {
	rows, err := r.db.Query(ctx, "SELECT "+foodColumns+" FROM foods ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

func (r *PostgresFoodRepository) GetByID(ctx context.Context, id string) (*model.Food, error) {
	var f model.Food
	err := r.db.QueryRow(ctx,
		"SELECT "+foodColumns+" FROM foods WHERE id = $1::bigint", id,
	).Scan(&f.ID, &f.Name, &f.Category, &f.Price, &f.Description, &f.Image, &f.InStock, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("failed to get food: %w", err)
	}
	return &f, nil
}

// Create inserts the row and reads it back in the same statement so the
// response reflects store-applied defaults and the assigned id.
func (r *PostgresFoodRepository) Create(ctx context.Context, f model.Food) (*model.Food, error) {
	var created model.Food
	err := r.db.QueryRow(ctx,
		"INSERT INTO foods (name, category, price, description, image, in_stock) VALUES ($1, $2, $3, $4, $5, $6) RETURNING "+foodColumns,
		f.Name, f.Category, f.Price, f.Description, f.Image, f.InStock,
	).Scan(&created.ID, &created.Name, &created.Category, &created.Price, &created.Description, &created.Image, &created.InStock, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create food: %w", err)
	}
	return &created, nil
}

// Update replaces every mutable field unconditionally.
func (r *PostgresFoodRepository) Update(ctx context.Context, id string, f model.Food) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE foods SET name = $1, category = $2, price = $3, description = $4, image = $5, in_stock = $6 WHERE id = $7::bigint",
		f.Name, f.Category, f.Price, f.Description, f.Image, f.InStock, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update food: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodNotFound
	}
	return nil
}

func (r *PostgresFoodRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM foods WHERE id = $1::bigint", id)
	if err != nil {
		return fmt.Errorf("failed to delete food: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodNotFound
	}
	return nil
}

// Search mirrors catalog.Matches with ILIKE.
func (r *PostgresFoodRepository) Search(ctx context.Context, query string) ([]model.Food, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.Query(ctx,
		"SELECT "+foodColumns+" FROM foods WHERE name ILIKE $1 OR category ILIKE $1 ORDER BY id DESC",
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

func scanFoods(rows pgx.Rows) ([]model.Food, error) {
	foods := make([]model.Food, 0)
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Category, &f.Price, &f.Description, &f.Image, &f.InStock, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan food row: %w", err)
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read food rows: %w", err)
	}
	return foods, nil
}
