package repository

import (
	"context"
	"testing"

	"foodiehaven/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedThree(t *testing.T, r *MemoryFoodRepository) {
	t.Helper()
	ctx := context.Background()
	for _, f := range []model.Food{
		{Name: "Margherita Pizza", Category: "Italian", Price: 12.99, Image: "🍕", InStock: true},
		{Name: "Cheeseburger", Category: "American", Price: 9.99, Image: "🍔", InStock: true},
		{Name: "Pad Thai", Category: "Thai", Price: 11.50, Image: "🍜", InStock: true},
	} {
		_, err := r.Create(ctx, f)
		require.NoError(t, err)
	}
}

func TestCreate_AssignsFreshIDs(t *testing.T) {
	r := NewMemoryFoodRepository()
	ctx := context.Background()

	a, err := r.Create(ctx, model.Food{Name: "A"})
	require.NoError(t, err)
	b, err := r.Create(ctx, model.Food{Name: "B"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())

	foods, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}

func TestList_OrderedByIDDescending(t *testing.T) {
	r := NewMemoryFoodRepository()
	seedThree(t, r)

	foods, err := r.List(context.Background())
	require.NoError(t, err)

	require.Len(t, foods, 3)
	assert.Equal(t, "Pad Thai", foods[0].Name)
	assert.Equal(t, "Margherita Pizza", foods[2].Name)
}

func TestGetByID(t *testing.T) {
	r := NewMemoryFoodRepository()
	seedThree(t, r)
	ctx := context.Background()

	f, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Margherita Pizza", f.Name)

	_, err = r.GetByID(ctx, "99")
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestGetByID_NonNumericIDIsAStoreError(t *testing.T) {
	r := NewMemoryFoodRepository()

	_, err := r.GetByID(context.Background(), "abc")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFoodNotFound)
}

func TestUpdate_FullReplace(t *testing.T) {
	r := NewMemoryFoodRepository()
	seedThree(t, r)
	ctx := context.Background()

	// Image and description omitted: they must come back empty.
	err := r.Update(ctx, "1", model.Food{Name: "Quattro Formaggi", Category: "Italian", Price: 14.50})
	require.NoError(t, err)

	f, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Quattro Formaggi", f.Name)
	assert.Empty(t, f.Image)
	assert.Empty(t, f.Description)
	assert.False(t, f.InStock)
	assert.False(t, f.CreatedAt.IsZero(), "creation timestamp is immutable")
}

func TestUpdate_NotFound(t *testing.T) {
	r := NewMemoryFoodRepository()

	err := r.Update(context.Background(), "42", model.Food{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestDelete(t *testing.T) {
	r := NewMemoryFoodRepository()
	seedThree(t, r)
	ctx := context.Background()

	require.NoError(t, r.Delete(ctx, "2"))

	foods, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}

func TestDelete_NonexistentLeavesCountUnchanged(t *testing.T) {
	r := NewMemoryFoodRepository()
	seedThree(t, r)
	ctx := context.Background()

	err := r.Delete(ctx, "42")
	assert.ErrorIs(t, err, ErrFoodNotFound)

	foods, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 3)
}

func TestSearch_SubstringOnNameOrCategory(t *testing.T) {
	r := NewMemoryFoodRepository()
	seedThree(t, r)
	ctx := context.Background()

	byName, err := r.Search(ctx, "pizza")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Margherita Pizza", byName[0].Name)

	byCategory, err := r.Search(ctx, "THAI")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Pad Thai", byCategory[0].Name)

	all, err := r.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
