package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"foodiehaven/internal/catalog"
	"foodiehaven/internal/model"
)

// MemoryFoodRepository is an in-memory FoodRepository used by tests and as
// a store-free development fallback. It reproduces the Postgres semantics:
// ids are assigned serially, lists come back id-descending and a
// non-numeric id is a store error, not a not-found.
type MemoryFoodRepository struct {
	mu     sync.Mutex
	foods  map[int64]model.Food
	nextID int64
}

func NewMemoryFoodRepository() *MemoryFoodRepository {
	return &MemoryFoodRepository{
		foods:  make(map[int64]model.Food),
		nextID: 1,
	}
}

func (r *MemoryFoodRepository) List(ctx context.Context) ([]model.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(), nil
}

func (r *MemoryFoodRepository) GetByID(ctx context.Context, id string) (*model.Food, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.foods[n]
	if !ok {
		return nil, ErrFoodNotFound
	}
	return &f, nil
}

func (r *MemoryFoodRepository) Create(ctx context.Context, f model.Food) (*model.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f.ID = r.nextID
	r.nextID++
	f.CreatedAt = time.Now()
	r.foods[f.ID] = f
	return &f, nil
}

func (r *MemoryFoodRepository) Update(ctx context.Context, id string, f model.Food) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prior, ok := r.foods[n]
	if !ok {
		return ErrFoodNotFound
	}
	f.ID = n
	f.CreatedAt = prior.CreatedAt
	r.foods[n] = f
	return nil
}

func (r *MemoryFoodRepository) Delete(ctx context.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.foods[n]; !ok {
		return ErrFoodNotFound
	}
	delete(r.foods, n)
	return nil
}

func (r *MemoryFoodRepository) Search(ctx context.Context, query string) ([]model.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches := make([]model.Food, 0)
	for _, f := range r.snapshot() {
		if catalog.Matches(f, query) {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

func (r *MemoryFoodRepository) snapshot() []model.Food {
	foods := make([]model.Food, 0, len(r.foods))
	for _, f := range r.foods {
		foods = append(foods, f)
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].ID > foods[j].ID })
	return foods
}

func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		// Mirrors the Postgres cast failure for a non-numeric id.
		return 0, fmt.Errorf("invalid input syntax for type bigint: %q", id)
	}
	return n, nil
}
