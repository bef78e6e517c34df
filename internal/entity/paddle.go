package entity

import (
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Paddle is the player-controlled rectangle at the bottom of the field.
// It stays inside the field through movement gating: a direction is
// only applied while the matching edge is still inside the bound, so no
// post-move clamping is needed.
type Paddle struct {
	tombstone
	core.Rect

	// Velocity is recomputed from input every tick.
	Velocity core.Vec

	// Speed is the horizontal movement magnitude per tick.
	Speed float64
}

// NewPaddle creates a paddle centered on (x, y).
func NewPaddle(x, y, w, h, speed float64) *Paddle {
	return &Paddle{
		Rect:  core.NewRect(x, y, w, h, core.ColorRed),
		Speed: speed,
	}
}

// Kind returns KindPaddle. Safe on a nil receiver.
func (p *Paddle) Kind() Kind { return KindPaddle }

// Update applies player input and moves the paddle. Left is checked
// before right, so holding both keys moves left.
func (p *Paddle) Update(ctx *Context) {
	switch {
	case ctx.Input.Down(core.ActionLeft) && p.Left() > 0:
		p.Velocity.X = -p.Speed
	case ctx.Input.Down(core.ActionRight) && p.Right() < ctx.FieldW:
		p.Velocity.X = p.Speed
	default:
		p.Velocity.X = 0
	}

	p.Move(p.Velocity)
}

// Draw renders the paddle.
func (p *Paddle) Draw(r core.Renderer) {
	r.FillRect(p.Rect)
}
