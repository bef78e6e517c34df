// Package game implements the simulation: the round state machine, the
// per-tick frame algorithm, and the collision resolution rules. It is
// pure logic with no terminal dependencies; the platform layer feeds it
// input frames and a renderer.
package game

import (
	"fmt"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/entity"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// State is the round state.
type State int

const (
	StatePaused State = iota
	StateGameOver
	StateInProgress
	StateVictory
)

// String returns the identifier-style name of the state.
func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	case StateInProgress:
		return "playing"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Label returns the player-facing status text for the state.
func (s State) Label() string {
	switch s {
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "Game over!"
	case StateVictory:
		return "You won!"
	default:
		return ""
	}
}

// hudTextX/Y position the lives and status text, in field units.
const (
	hudTextX = 10
	hudTextY = 10
)

// Game holds the whole simulation: the entity registry, the state
// machine, and the remaining lives. It owns the registry exclusively;
// safety comes from the strict per-frame phase order
// (update -> resolve -> sweep -> render), not from locks.
type Game struct {
	cfg config.Config
	reg *registry.Registry

	state          State
	remainingLives int
	tick           uint64

	// pauseHeld tracks whether the pause key was already down last
	// frame, so holding it toggles only once.
	pauseHeld bool
}

// New creates a game with the given configuration. Call Restart before
// the first Step.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:   cfg,
		reg:   registry.New(),
		state: StateGameOver,
	}
}

// Restart resets the round: lives back to the configured count, the
// registry cleared and reseeded with the brick grid, one ball, and one
// paddle, and the state machine parked on Paused.
func (g *Game) Restart() {
	g.remainingLives = g.cfg.Gameplay.Lives
	g.state = StatePaused
	g.tick = 0
	g.reg.Clear()

	g.seedBricks()
	g.spawnBall()
	g.reg.Add(entity.NewPaddle(
		g.cfg.Field.Width/2,
		g.cfg.Field.Height-g.cfg.Paddle.BottomOffset,
		g.cfg.Paddle.Width,
		g.cfg.Paddle.Height,
		g.cfg.Paddle.Speed,
	))
}

// seedBricks populates the brick grid. The required hits follow a
// deterministic pattern over the grid coordinates:
// 1 + ((column * row) % 3).
func (g *Game) seedBricks() {
	bc := g.cfg.Bricks

	for col := 0; col < bc.Columns; col++ {
		for row := 0; row < bc.Rows; row++ {
			x := (float64(col) + float64(bc.StartColumn)) * (bc.Width + bc.Spacing)
			y := (float64(row) + float64(bc.StartRow)) * (bc.Height + bc.Spacing)

			g.reg.Add(entity.NewBrick(
				bc.OffsetX+x, y,
				bc.Width, bc.Height,
				1+((col*row)%3),
			))
		}
	}
}

// spawnBall creates a ball at the spawn point in the middle of the
// field, moving up-left.
func (g *Game) spawnBall() {
	g.reg.Add(entity.NewBall(
		g.cfg.Field.Width/2,
		g.cfg.Field.Height/2,
		g.cfg.Ball.Radius,
		g.cfg.Ball.Speed,
	))
}

// Step advances the simulation by one tick.
//
// Outside InProgress only the pause and restart keys are consulted.
// While InProgress the frame algorithm is: respawn a missing ball (a
// lost ball is detected by absence and costs a life), check victory,
// check game over, update every entity, resolve collisions per ball
// (all bricks first, then all paddles), and sweep destroyed entities.
// State transitions take effect at the top of the next frame.
func (g *Game) Step(in core.InputFrame) {
	g.handlePause(in)

	if in.Down(core.ActionRestart) {
		g.Restart()
	}

	if g.state != StateInProgress {
		return
	}

	g.tick++

	if registry.CountOf[*entity.Ball](g.reg) == 0 {
		g.spawnBall()
		g.remainingLives--
	}

	if registry.CountOf[*entity.Brick](g.reg) == 0 {
		g.state = StateVictory
	}

	if g.remainingLives <= 0 {
		g.state = StateGameOver
	}

	ctx := &entity.Context{
		Input:  in,
		FieldW: g.cfg.Field.Width,
		FieldH: g.cfg.Field.Height,
	}
	g.reg.UpdateAll(ctx)

	registry.EachOf(g.reg, func(ball *entity.Ball) {
		registry.EachOf(g.reg, func(brick *entity.Brick) {
			SolveBrickBall(brick, ball)
		})
		registry.EachOf(g.reg, func(paddle *entity.Paddle) {
			SolvePaddleBall(paddle, ball)
		})
	})

	g.reg.Sweep()
}

// handlePause toggles between Paused and InProgress on the key-down
// edge of the pause key. Holding the key does not toggle again until
// it is released for at least one frame.
func (g *Game) handlePause(in core.InputFrame) {
	if in.Down(core.ActionPause) {
		if !g.pauseHeld {
			switch g.state {
			case StatePaused:
				g.state = StateInProgress
			case StateInProgress:
				g.state = StatePaused
			}
		}
		g.pauseHeld = true
	} else {
		g.pauseHeld = false
	}
}

// Render draws the current frame. Outside InProgress only the status
// text is shown; otherwise every live entity plus the lives counter.
// Render runs after Step's sweep, so a frame never shows an entity
// destroyed earlier in that same frame.
func (g *Game) Render(r core.Renderer) {
	r.Clear()

	if g.state != StateInProgress {
		r.DrawText(hudTextX, hudTextY, g.state.Label(), core.ColorWhite)
		return
	}

	g.reg.DrawAll(r)
	r.DrawText(hudTextX, hudTextY, fmt.Sprintf("Lives: %d", g.remainingLives), core.ColorWhite)
}

// State returns the current round state.
func (g *Game) State() State {
	return g.state
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.remainingLives
}

// Tick returns the number of InProgress ticks since the last restart.
func (g *Game) Tick() uint64 {
	return g.tick
}
