// Package ui holds the catalog client state: the fetched list, the derived
// filtered list, the modal draft and the cart. It is the headless
// counterpart of the single-page frontend and is rendered by cmd/menu.
package ui

import (
	"context"
	"strconv"

	"foodiehaven/internal/cart"
	"foodiehaven/internal/catalog"
	"foodiehaven/internal/client"
	"foodiehaven/internal/model"
)

type ModalMode string

const (
	ModalCreate ModalMode = "create"
	ModalEdit   ModalMode = "edit"
)

// Draft is the in-progress created/edited item.
type Draft struct {
	ID    string
	Input model.FoodInput
}

type State struct {
	Foods            []model.Food
	Filtered         []model.Food
	Loading          bool
	SearchQuery      string
	SelectedCategory string
	Cart             *cart.Cart
	ShowCart         bool
	ShowModal        bool
	ModalMode        ModalMode
	Draft            Draft

	// Alert surfaces a blocking user-visible message; Confirm asks a
	// blocking yes/no question. cmd/menu wires these to stdin/stdout and
	// tests capture them.
	Alert   func(msg string)
	Confirm func(msg string) bool

	api *client.Client
}

func NewState(api *client.Client) *State {
	return &State{
		SelectedCategory: catalog.AllCategories,
		Cart:             cart.New(),
		Alert:            func(string) {},
		Confirm:          func(string) bool { return true },
		api:              api,
	}
}

// Load fetches the full catalog. On failure it alerts and leaves the prior
// list untouched. There is no retry.
func (s *State) Load(ctx context.Context) {
	s.Loading = true
	foods, err := s.api.List(ctx)
	s.Loading = false

	if err != nil {
		s.Alert("Failed to load foods")
		s.applyFilters()
		return
	}
	s.Foods = foods
	s.applyFilters()
}

func (s *State) SetSearch(query string) {
	s.SearchQuery = query
	s.applyFilters()
}

func (s *State) SetCategory(category string) {
	s.SelectedCategory = category
	s.applyFilters()
}

// applyFilters recomputes the derived list through the shared predicate;
// text and category filters intersect.
func (s *State) applyFilters() {
	s.Filtered = catalog.Filter(s.Foods, s.SearchQuery, s.SelectedCategory)
}

func (s *State) OpenCreate() {
	s.ModalMode = ModalCreate
	inStock := true
	s.Draft = Draft{Input: model.FoodInput{InStock: &inStock}}
	s.ShowModal = true
}

func (s *State) OpenEdit(f model.Food) {
	s.ModalMode = ModalEdit
	inStock := f.InStock
	s.Draft = Draft{
		ID: strconv.FormatInt(f.ID, 10),
		Input: model.FoodInput{
			Name:        f.Name,
			Category:    f.Category,
			Price:       f.Price,
			Description: f.Description,
			Image:       f.Image,
			InStock:     &inStock,
		},
	}
	s.ShowModal = true
}

func (s *State) CloseModal() {
	s.ShowModal = false
}

func (s *State) ToggleCart() {
	s.ShowCart = !s.ShowCart
}

// Submit validates the draft, issues the create or update, and re-fetches
// the whole list on success. No optimistic update.
func (s *State) Submit(ctx context.Context) {
	in := s.Draft.Input
	if in.Name == "" || in.Category == "" || in.Price == 0 || in.Description == "" {
		s.Alert("Please fill in all required fields")
		return
	}

	var err error
	if s.ModalMode == ModalCreate {
		_, err = s.api.Create(ctx, in)
	} else {
		_, err = s.api.Update(ctx, s.Draft.ID, in)
	}
	if err != nil {
		s.Alert("Failed to save food")
		return
	}

	s.ShowModal = false
	s.Load(ctx)
}

// Delete asks for confirmation, deletes, and re-fetches on success.
func (s *State) Delete(ctx context.Context, id string) {
	if !s.Confirm("Are you sure you want to delete this item?") {
		return
	}
	if err := s.api.Delete(ctx, id); err != nil {
		s.Alert("Failed to delete food")
		return
	}
	s.Load(ctx)
}

// AddToCart adds an item to the cart; out-of-stock items are refused.
func (s *State) AddToCart(f model.Food) bool {
	return s.Cart.Add(f)
}
