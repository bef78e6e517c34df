package entity

import (
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Ball is the bouncing ball: a circle with a velocity vector. Bounces
// are fixed-magnitude: wall and collision responses set velocity
// components to +-Speed rather than reflecting the incoming vector.
type Ball struct {
	tombstone
	core.Circle

	// Velocity is the per-tick movement delta.
	Velocity core.Vec

	// Speed is the fixed bounce magnitude for both axes.
	Speed float64
}

// NewBall creates a ball at (x, y) moving up-left at full speed, the
// serve direction.
func NewBall(x, y, radius, speed float64) *Ball {
	return &Ball{
		Circle:   core.NewCircle(x, y, radius, core.ColorRed),
		Velocity: core.Vec{X: -speed, Y: -speed},
		Speed:    speed,
	}
}

// Kind returns KindBall. Safe on a nil receiver.
func (b *Ball) Kind() Kind { return KindBall }

// Update moves the ball by its velocity and resolves collisions with
// the field bounds.
func (b *Ball) Update(ctx *Context) {
	b.Move(b.Velocity)
	b.solveBoundCollisions(ctx.FieldW, ctx.FieldH)
}

// Draw renders the ball.
func (b *Ball) Draw(r core.Renderer) {
	r.FillCircle(b.Circle)
}

// solveBoundCollisions reflects the ball off the side and top walls at
// fixed magnitude. Crossing the bottom edge destroys the ball instead
// of bouncing; the side checks cannot override that since the axes are
// resolved independently.
func (b *Ball) solveBoundCollisions(fieldW, fieldH float64) {
	if b.Left() < 0 {
		b.Velocity.X = b.Speed
	} else if b.Right() > fieldW {
		b.Velocity.X = -b.Speed
	}

	if b.Top() < 0 {
		b.Velocity.Y = b.Speed
	} else if b.Bottom() > fieldH {
		b.MarkDestroyed()
	}
}
