package entity

import (
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Brick alpha levels by remaining required hits. Display state only;
// the hit counter is the source of truth.
const (
	brickAlphaOneHit   = 80
	brickAlphaTwoHits  = 170
	brickAlphaMoreHits = 255
)

// Brick is a destructible rectangle. RequiredHits counts the remaining
// ball collisions before the brick is destroyed; its fill color is
// derived from that counter every tick.
type Brick struct {
	tombstone
	core.Rect

	// RequiredHits is the number of collisions left. Seeded >= 1.
	RequiredHits int
}

// NewBrick creates a brick centered on (x, y) requiring the given
// number of hits.
func NewBrick(x, y, w, h float64, requiredHits int) *Brick {
	b := &Brick{
		Rect:         core.NewRect(x, y, w, h, core.ColorYellow),
		RequiredHits: requiredHits,
	}
	b.Fill = brickColor(requiredHits)
	return b
}

// Kind returns KindBrick. Safe on a nil receiver.
func (b *Brick) Kind() Kind { return KindBrick }

// Update recomputes the fill color from the remaining hits.
func (b *Brick) Update(ctx *Context) {
	b.Fill = brickColor(b.RequiredHits)
}

// Draw renders the brick.
func (b *Brick) Draw(r core.Renderer) {
	r.FillRect(b.Rect)
}

// brickColor maps remaining hits to the brick's display color: the
// more hits left, the more opaque the brick.
func brickColor(requiredHits int) core.RGBA {
	switch requiredHits {
	case 1:
		return core.ColorYellow.WithAlpha(brickAlphaOneHit)
	case 2:
		return core.ColorYellow.WithAlpha(brickAlphaTwoHits)
	default:
		return core.ColorYellow.WithAlpha(brickAlphaMoreHits)
	}
}
