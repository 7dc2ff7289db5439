package model

import "time"

// DefaultImage is the placeholder glyph assigned when a food is created
// without an image.
const DefaultImage = "🍽️"

// Categories known to the client. "All" is the no-filter sentinel; the
// server does not enforce this list.
var Categories = []string{"All", "Italian", "American", "Thai", "Japanese", "Salads"}

type Food struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// FoodInput is the create/update payload. InStock is a pointer so an
// absent field can default to true while an explicit false is honored.
type FoodInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	InStock     *bool   `json:"inStock"`
}
