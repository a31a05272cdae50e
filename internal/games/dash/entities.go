package dash

import "github.com/vovakirdan/tui-dash/internal/core"

// Platform is a solid ledge the player can land on.
type Platform struct {
	core.Rect
}

// Obstacle sits on top of a platform; touching its shrunk hitbox kills the player.
type Obstacle struct {
	core.Rect
	Sprite int // index into Assets.ObstacleSprites
}

// Coin is collected on contact.
type Coin struct {
	core.Rect
}

// Bubble is a cosmetic background particle rising from the bottom edge.
type Bubble struct {
	X, Y   float64
	Radius float64
	Speed  float64
}

// scroll moves r left by speed.
func scroll(r *core.Rect, speed float64) {
	r.X -= speed
}

// offScreen reports whether r has fully left the canvas on the left side.
func offScreen(r core.Rect) bool {
	return r.X+r.W < 0
}

// Move shifts the platform left by the world scroll speed.
func (p *Platform) Move(speed float64) { scroll(&p.Rect, speed) }

// Move shifts the obstacle left by the world scroll speed.
func (o *Obstacle) Move(speed float64) { scroll(&o.Rect, speed) }

// Move shifts the coin left by the world scroll speed.
func (c *Coin) Move(speed float64) { scroll(&c.Rect, speed) }

// OffScreen reports whether the platform can be dropped.
func (p Platform) OffScreen() bool { return offScreen(p.Rect) }

// OffScreen reports whether the obstacle can be dropped.
func (o Obstacle) OffScreen() bool { return offScreen(o.Rect) }

// OffScreen reports whether the coin can be dropped.
func (c Coin) OffScreen() bool { return offScreen(c.Rect) }

// Hitbox returns the obstacle box shrunk by tolerance on every side.
func (o Obstacle) Hitbox(tolerance float64) core.Rect {
	return o.Rect.Shrink(tolerance)
}

// Update raises the bubble.
func (b *Bubble) Update() {
	b.Y -= b.Speed
}

// OffScreen reports whether the bubble has risen past the top edge.
func (b Bubble) OffScreen() bool {
	return b.Y+b.Radius < 0
}

// mover is satisfied by pointers to the scrolling entities.
type mover[T any] interface {
	*T
	Move(speed float64)
	OffScreen() bool
}

// advance moves every entity left and returns a filtered slice without the
// ones that left the canvas. The backing array is reused.
func advance[T any, P mover[T]](items []T, speed float64) []T {
	kept := items[:0]
	for i := range items {
		P(&items[i]).Move(speed)
		if !P(&items[i]).OffScreen() {
			kept = append(kept, items[i])
		}
	}
	return kept
}
