// Package cart is the client-local shopping cart: a list of lines mutated
// by three operations. Nothing here ever reaches the server.
package cart

import "foodiehaven/internal/model"

// Line pairs a food snapshot with a quantity of at least 1.
type Line struct {
	Food     model.Food
	Quantity int
}

// Subtotal is price × quantity for this line.
func (l Line) Subtotal() float64 {
	return l.Food.Price * float64(l.Quantity)
}

type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts an in-stock food in the cart, incrementing the quantity when a
// line with the same id already exists. Out-of-stock foods are rejected,
// mirroring the disabled button in the UI.
func (c *Cart) Add(f model.Food) bool {
	if !f.InStock {
		return false
	}
	for i := range c.lines {
		if c.lines[i].Food.ID == f.ID {
			c.lines[i].Quantity++
			return true
		}
	}
	c.lines = append(c.lines, Line{Food: f, Quantity: 1})
	return true
}

// UpdateQuantity adjusts a line's quantity by delta, removing the line when
// the result drops to zero or below.
func (c *Cart) UpdateQuantity(id int64, delta int) {
	for i := range c.lines {
		if c.lines[i].Food.ID != id {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Remove deletes the line unconditionally.
func (c *Cart) Remove(id int64) {
	for i := range c.lines {
		if c.lines[i].Food.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total is recomputed on every read.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Lines returns a copy of the cart contents.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}
