package game

import (
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/entity"
)

// SolvePaddleBall resolves a paddle-ball intersection. The bounce is a
// simplified reflection, not a physical one: vertical velocity is
// forced upward at fixed magnitude, and the horizontal sign follows
// which side of the paddle center the ball is on. The comparison is
// strict, so a ball exactly at the center resolves rightward.
func SolvePaddleBall(paddle *entity.Paddle, ball *entity.Ball) {
	if !core.Intersects(paddle, ball) {
		return
	}

	ball.Velocity.Y = -ball.Speed
	if ball.X() < paddle.X() {
		ball.Velocity.X = -ball.Speed
	} else {
		ball.Velocity.X = ball.Speed
	}
}

// SolveBrickBall resolves a brick-ball intersection. The brick loses
// one required hit and is flagged destroyed at zero; it stays
// interactable until the frame's sweep. The bounce flips exactly one
// velocity axis, chosen by the smallest overlap between the two boxes:
// the ball came predominantly from that side. There is no positional
// de-penetration, so the shapes may overlap for a frame.
func SolveBrickBall(brick *entity.Brick, ball *entity.Ball) {
	if !core.Intersects(brick, ball) {
		return
	}

	brick.RequiredHits--
	if brick.RequiredHits <= 0 {
		brick.MarkDestroyed()
	}

	overlapLeft := ball.Right() - brick.Left()
	overlapRight := brick.Right() - ball.Left()
	overlapTop := ball.Bottom() - brick.Top()
	overlapBottom := brick.Bottom() - ball.Top()

	ballFromLeft := core.AbsF(overlapLeft) < core.AbsF(overlapRight)
	ballFromTop := core.AbsF(overlapTop) < core.AbsF(overlapBottom)

	minOverlapX := overlapRight
	if ballFromLeft {
		minOverlapX = overlapLeft
	}
	minOverlapY := overlapBottom
	if ballFromTop {
		minOverlapY = overlapTop
	}

	if core.AbsF(minOverlapX) < core.AbsF(minOverlapY) {
		if ballFromLeft {
			ball.Velocity.X = -ball.Speed
		} else {
			ball.Velocity.X = ball.Speed
		}
	} else {
		if ballFromTop {
			ball.Velocity.Y = -ball.Speed
		} else {
			ball.Velocity.Y = ball.Speed
		}
	}
}
