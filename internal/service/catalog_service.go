package service

import (
	"context"

	"foodiehaven/internal/model"
	"foodiehaven/internal/repository"
)

// CatalogService applies create-time defaults and delegates everything else
// to the store.
type CatalogService struct {
	repo repository.FoodRepository
}

func NewCatalogService(repo repository.FoodRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListFoods(ctx context.Context) ([]model.Food, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) GetFood(ctx context.Context, id string) (*model.Food, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateFood assigns the placeholder image when none is given and defaults
// inStock to true unless the payload says false explicitly.
func (s *CatalogService) CreateFood(ctx context.Context, in model.FoodInput) (*model.Food, error) {
	return s.repo.Create(ctx, foodFromInput(in))
}

// UpdateFood replaces the full row; omitted payload fields overwrite with
// their zero values.
func (s *CatalogService) UpdateFood(ctx context.Context, id string, in model.FoodInput) (*model.Food, error) {
	f := model.Food{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Description: in.Description,
		Image:       in.Image,
		InStock:     in.InStock != nil && *in.InStock,
	}
	if err := s.repo.Update(ctx, id, f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *CatalogService) DeleteFood(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *CatalogService) SearchFoods(ctx context.Context, query string) ([]model.Food, error) {
	return s.repo.Search(ctx, query)
}

func foodFromInput(in model.FoodInput) model.Food {
	f := model.Food{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Description: in.Description,
		Image:       in.Image,
		InStock:     in.InStock == nil || *in.InStock,
	}
	if f.Image == "" {
		f.Image = model.DefaultImage
	}
	return f
}
