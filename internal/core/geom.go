// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Design space dimensions. All simulation coordinates live in this fixed
// logical canvas regardless of the physical display size.
const (
	DesignWidth  = 1200.0
	DesignHeight = 800.0
)

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
// Negative sizes are clamped to zero.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Two boxes collide unless one is strictly separated along either axis,
// so boxes that share an edge count as touching.
func (r Rect) Intersects(other Rect) bool {
	if r.Right() < other.X || r.X > other.Right() {
		return false
	}
	if r.Bottom() < other.Y || r.Y > other.Bottom() {
		return false
	}
	return true
}

// Inflate grows the rectangle by dx on the left and right and by dy on the
// top and bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return NewRect(r.X-dx, r.Y-dy, r.W+2*dx, r.H+2*dy)
}

// Shrink pulls every side of the rectangle inward by t.
func (r Rect) Shrink(t float64) Rect {
	return r.Inflate(-t, -t)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
