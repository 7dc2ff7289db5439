package ui_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"foodiehaven/internal/client"
	"foodiehaven/internal/handler"
	"foodiehaven/internal/model"
	"foodiehaven/internal/repository"
	"foodiehaven/internal/service"
	"foodiehaven/internal/ui"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestState runs the whole stack: state → client → router → service →
// in-memory store.
func newTestState(t *testing.T) (*ui.State, *repository.MemoryFoodRepository) {
	t.Helper()

	repo := repository.NewMemoryFoodRepository()
	svc := service.NewCatalogService(repo)
	h := handler.NewHandler(handler.NewFoodHandler(svc, zerolog.Nop()), zerolog.Nop())

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	return ui.NewState(client.New(ts.URL)), repo
}

func seedMenu(t *testing.T, repo *repository.MemoryFoodRepository) {
	t.Helper()
	ctx := context.Background()
	for _, f := range []model.Food{
		{Name: "Margherita Pizza", Category: "Italian", Price: 12.99, Description: "Classic pizza", Image: "🍕", InStock: true},
		{Name: "Pad Thai", Category: "Thai", Price: 11.50, Description: "Stir-fried noodles", Image: "🍜", InStock: true},
		{Name: "Tom Yum", Category: "Thai", Price: 8.50, Description: "Hot and sour soup", Image: "🍲", InStock: false},
	} {
		_, err := repo.Create(ctx, f)
		require.NoError(t, err)
	}
}

func TestLoad_FetchesFullList(t *testing.T) {
	s, repo := newTestState(t)
	seedMenu(t, repo)

	s.Load(context.Background())

	assert.False(t, s.Loading)
	assert.Len(t, s.Foods, 3)
	assert.Len(t, s.Filtered, 3)
	assert.Equal(t, "Tom Yum", s.Foods[0].Name, "id-descending order")
}

func TestLoad_FailureAlertsAndLeavesListUntouched(t *testing.T) {
	s := ui.NewState(client.New("http://127.0.0.1:1")) // nothing listens here

	var alerts []string
	s.Alert = func(msg string) { alerts = append(alerts, msg) }

	s.Load(context.Background())

	assert.Equal(t, []string{"Failed to load foods"}, alerts)
	assert.Empty(t, s.Foods)
	assert.False(t, s.Loading)
}

func TestFilterComposition_CategoryANDSearchText(t *testing.T) {
	s, repo := newTestState(t)
	seedMenu(t, repo)
	s.Load(context.Background())

	s.SetCategory("Thai")
	assert.Len(t, s.Filtered, 2)

	s.SetSearch("pad")
	require.Len(t, s.Filtered, 1)
	assert.Equal(t, "Pad Thai", s.Filtered[0].Name)

	s.SetSearch("pizza")
	assert.Empty(t, s.Filtered, "text matches Italian item but category filter excludes it")

	s.SetCategory("All")
	require.Len(t, s.Filtered, 1)
	assert.Equal(t, "Margherita Pizza", s.Filtered[0].Name)
}

func TestSubmit_RequiresAllFields(t *testing.T) {
	s, _ := newTestState(t)
	s.Load(context.Background())

	var alerts []string
	s.Alert = func(msg string) { alerts = append(alerts, msg) }

	s.OpenCreate()
	s.Draft.Input.Name = "Pad Thai"
	s.Draft.Input.Category = "Thai"
	// price and description left empty

	s.Submit(context.Background())

	assert.Equal(t, []string{"Please fill in all required fields"}, alerts)
	assert.True(t, s.ShowModal, "modal stays open")
	assert.Empty(t, s.Foods)
}

func TestSubmit_CreateClosesModalAndRefetches(t *testing.T) {
	s, _ := newTestState(t)
	s.Load(context.Background())

	s.OpenCreate()
	s.Draft.Input = model.FoodInput{
		Name:        "Pad Thai",
		Category:    "Thai",
		Price:       11.50,
		Description: "Stir-fried noodles",
	}

	s.Submit(context.Background())

	assert.False(t, s.ShowModal)
	require.Len(t, s.Foods, 1)
	assert.Equal(t, "Pad Thai", s.Foods[0].Name)
	assert.True(t, s.Foods[0].InStock)
	assert.Equal(t, model.DefaultImage, s.Foods[0].Image)
}

func TestSubmit_EditUpdatesAndRefetches(t *testing.T) {
	s, repo := newTestState(t)
	seedMenu(t, repo)
	ctx := context.Background()
	s.Load(ctx)

	s.OpenEdit(s.Foods[2]) // Margherita Pizza, id 1
	assert.Equal(t, ui.ModalEdit, s.ModalMode)
	assert.Equal(t, "1", s.Draft.ID)

	s.Draft.Input.Price = 13.99
	s.Submit(ctx)

	assert.False(t, s.ShowModal)
	require.Len(t, s.Foods, 3)
	assert.InDelta(t, 13.99, s.Foods[2].Price, 1e-9)
}

func TestDelete_DeclinedConfirmationDoesNothing(t *testing.T) {
	s, repo := newTestState(t)
	seedMenu(t, repo)
	ctx := context.Background()
	s.Load(ctx)

	s.Confirm = func(string) bool { return false }
	s.Delete(ctx, "1")

	assert.Len(t, s.Foods, 3)

	foods, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 3, "no request was issued")
}

func TestDelete_ConfirmedRemovesAndRefetches(t *testing.T) {
	s, repo := newTestState(t)
	seedMenu(t, repo)
	ctx := context.Background()
	s.Load(ctx)

	var prompted string
	s.Confirm = func(msg string) bool {
		prompted = msg
		return true
	}

	s.Delete(ctx, "1")

	assert.Contains(t, prompted, "Are you sure")
	assert.Len(t, s.Foods, 2)
}

func TestDelete_FailureAlertsAndLeavesStateUntouched(t *testing.T) {
	s, repo := newTestState(t)
	seedMenu(t, repo)
	ctx := context.Background()
	s.Load(ctx)

	var alerts []string
	s.Alert = func(msg string) { alerts = append(alerts, msg) }

	s.Delete(ctx, "999")

	assert.Equal(t, []string{"Failed to delete food"}, alerts)
	assert.Len(t, s.Foods, 3)
}

func TestAddToCart_OutOfStockDisabled(t *testing.T) {
	s, repo := newTestState(t)
	seedMenu(t, repo)
	s.Load(context.Background())

	var tomYum, padThai model.Food
	for _, f := range s.Foods {
		switch f.Name {
		case "Tom Yum":
			tomYum = f
		case "Pad Thai":
			padThai = f
		}
	}

	assert.False(t, s.AddToCart(tomYum))
	assert.Equal(t, 0, s.Cart.Len())

	assert.True(t, s.AddToCart(padThai))
	assert.True(t, s.AddToCart(padThai))
	assert.Equal(t, 1, s.Cart.Len())
	assert.InDelta(t, 23.00, s.Cart.Total(), 1e-9)
}

func TestOpenCreate_DraftDefaultsToInStock(t *testing.T) {
	s, _ := newTestState(t)

	s.OpenCreate()

	assert.True(t, s.ShowModal)
	assert.Equal(t, ui.ModalCreate, s.ModalMode)
	require.NotNil(t, s.Draft.Input.InStock)
	assert.True(t, *s.Draft.Input.InStock)
}
