package game

import (
	"testing"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/entity"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

func newTestGame() *Game {
	g := New(config.DefaultConfig())
	g.Restart()
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRestartSeedsRound(t *testing.T) {
	g := newTestGame()

	if n := registry.CountOf[*entity.Brick](g.reg); n != 44 {
		t.Errorf("brick count = %d, expected 44", n)
	}
	if n := registry.CountOf[*entity.Ball](g.reg); n != 1 {
		t.Errorf("ball count = %d, expected 1", n)
	}
	if n := registry.CountOf[*entity.Paddle](g.reg); n != 1 {
		t.Errorf("paddle count = %d, expected 1", n)
	}
	if g.remainingLives != 3 {
		t.Errorf("lives = %d, expected 3", g.remainingLives)
	}
	if g.state != StatePaused {
		t.Errorf("state = %v, expected paused", g.state)
	}
	if g.tick != 0 {
		t.Errorf("tick = %d, expected 0", g.tick)
	}
}

func TestRestartPlacesBallAndPaddle(t *testing.T) {
	g := newTestGame()

	registry.EachOf(g.reg, func(b *entity.Ball) {
		if b.X() != 400 || b.Y() != 300 {
			t.Errorf("ball spawned at (%g, %g), expected field center (400, 300)", b.X(), b.Y())
		}
	})
	registry.EachOf(g.reg, func(p *entity.Paddle) {
		if p.X() != 400 || p.Y() != 550 {
			t.Errorf("paddle spawned at (%g, %g), expected (400, 550)", p.X(), p.Y())
		}
	})
}

func TestSeedBrickGrid(t *testing.T) {
	// Position: x = offsetX + (col+startColumn)*(w+spacing),
	// y = (row+startRow)*(h+spacing). Hits: 1 + ((col*row) % 3).
	tests := []struct {
		col, row int
		x, y     float64
		hits     int
	}{
		{col: 0, row: 0, x: 85, y: 46, hits: 1},
		{col: 1, row: 1, x: 148, y: 69, hits: 2},
		{col: 2, row: 3, x: 211, y: 115, hits: 1},
		{col: 10, row: 2, x: 715, y: 92, hits: 3},
	}

	g := newTestGame()
	for _, tc := range tests {
		found := false
		registry.EachOf(g.reg, func(b *entity.Brick) {
			if b.X() == tc.x && b.Y() == tc.y {
				found = true
				if b.RequiredHits != tc.hits {
					t.Errorf("brick (%d, %d): hits = %d, expected %d",
						tc.col, tc.row, b.RequiredHits, tc.hits)
				}
			}
		})
		if !found {
			t.Errorf("no brick at (%g, %g) for grid cell (%d, %d)", tc.x, tc.y, tc.col, tc.row)
		}
	}
}

func TestPauseTogglesOnKeyEdge(t *testing.T) {
	g := newTestGame()

	g.Step(frame(core.ActionPause))
	if g.state != StateInProgress {
		t.Fatalf("state after pause press = %v, expected playing", g.state)
	}

	// Held across frames, no second toggle
	g.Step(frame(core.ActionPause))
	if g.state != StateInProgress {
		t.Errorf("held pause key re-toggled, state = %v", g.state)
	}

	// Release, press again: toggles back
	g.Step(frame())
	g.Step(frame(core.ActionPause))
	if g.state != StatePaused {
		t.Errorf("state after release and re-press = %v, expected paused", g.state)
	}
}

func TestPausedFrameIsFrozen(t *testing.T) {
	g := newTestGame()

	before := g.Snapshot()
	g.Step(frame(core.ActionLeft))
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("stepping while paused must not change the simulation")
	}
}

func TestRestartWorksFromAnyState(t *testing.T) {
	for _, s := range []State{StatePaused, StateInProgress, StateGameOver, StateVictory} {
		g := newTestGame()
		g.state = s
		registry.EachOf(g.reg, func(b *entity.Brick) { b.MarkDestroyed() })
		g.reg.Sweep()

		g.Step(frame(core.ActionRestart))

		if g.state != StatePaused {
			t.Errorf("restart from %v: state = %v, expected paused", s, g.state)
		}
		if n := registry.CountOf[*entity.Brick](g.reg); n != 44 {
			t.Errorf("restart from %v: brick count = %d, expected 44", s, n)
		}
	}
}

// sinkBall pushes the ball below the field so its next update marks it
// destroyed.
func sinkBall(g *Game) {
	registry.EachOf(g.reg, func(b *entity.Ball) {
		b.Pos.Y = g.cfg.Field.Height + 50
	})
}

func TestLostBallCostsLifeAndRespawns(t *testing.T) {
	g := newTestGame()
	g.state = StateInProgress

	sinkBall(g)
	g.Step(frame()) // ball destroys itself and is swept

	if n := registry.CountOf[*entity.Ball](g.reg); n != 0 {
		t.Fatalf("ball count after sweep = %d, expected 0", n)
	}
	if g.remainingLives != 3 {
		t.Errorf("lives before respawn = %d, expected 3 (loss detected next frame)", g.remainingLives)
	}

	g.Step(frame()) // absence detected: respawn, life deducted

	if g.remainingLives != 2 {
		t.Errorf("lives after respawn = %d, expected 2", g.remainingLives)
	}
	if n := registry.CountOf[*entity.Ball](g.reg); n != 1 {
		t.Errorf("ball count after respawn = %d, expected 1", n)
	}
	if g.state != StateInProgress {
		t.Errorf("state = %v, expected playing", g.state)
	}
}

func TestLastLifeLossEndsGame(t *testing.T) {
	g := newTestGame()
	g.state = StateInProgress
	g.remainingLives = 1

	sinkBall(g)
	g.Step(frame()) // ball leaves
	g.Step(frame()) // respawn drops lives to 0, game over fires

	if g.remainingLives != 0 {
		t.Errorf("lives = %d, expected 0", g.remainingLives)
	}
	if g.state != StateGameOver {
		t.Errorf("state = %v, expected gameover", g.state)
	}

	// Frozen from here on
	before := g.Snapshot().Hash()
	g.Step(frame())
	if g.Snapshot().Hash() != before {
		t.Error("simulation must freeze after game over")
	}
}

func TestVictoryWhenBricksCleared(t *testing.T) {
	g := newTestGame()
	g.state = StateInProgress

	registry.EachOf(g.reg, func(b *entity.Brick) { b.MarkDestroyed() })

	// Flagged bricks are still counted this frame; the sweep at the end
	// removes them, and the next frame sees the empty group.
	g.Step(frame())
	if g.state != StateInProgress {
		t.Fatalf("state with flagged bricks = %v, expected still playing", g.state)
	}

	g.Step(frame())
	if g.state != StateVictory {
		t.Errorf("state = %v, expected victory", g.state)
	}
}

func TestNoDestroyedEntitiesSurviveStep(t *testing.T) {
	g := newTestGame()
	g.state = StateInProgress

	sinkBall(g)
	g.Step(frame())

	registry.EachOf(g.reg, func(b *entity.Ball) {
		if b.Destroyed() {
			t.Error("destroyed ball visible after Step")
		}
	})
	registry.EachOf(g.reg, func(b *entity.Brick) {
		if b.Destroyed() {
			t.Error("destroyed brick visible after Step")
		}
	})
}

// script holds one input frame per tick.
func playScript(g *Game, script []core.InputFrame) {
	for _, in := range script {
		g.Step(in)
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := make([]core.InputFrame, 0, 121)
	script = append(script, frame(core.ActionPause))
	for i := 0; i < 40; i++ {
		script = append(script, frame(core.ActionRight))
	}
	for i := 0; i < 30; i++ {
		script = append(script, frame(core.ActionLeft))
	}
	for i := 0; i < 50; i++ {
		script = append(script, frame())
	}

	g1 := newTestGame()
	g2 := newTestGame()
	playScript(g1, script)
	playScript(g2, script)

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("identical input scripts diverged: %#x vs %#x", s1.Hash(), s2.Hash())
	}

	// A different script must land in a different state.
	g3 := newTestGame()
	alt := make([]core.InputFrame, 0, len(script))
	alt = append(alt, frame(core.ActionPause))
	for i := 1; i < len(script); i++ {
		alt = append(alt, frame(core.ActionLeft))
	}
	playScript(g3, alt)

	if g3.Snapshot().Hash() == s1.Hash() {
		t.Error("different input scripts should not hash identically")
	}
}

func TestTickCountsOnlyPlayingFrames(t *testing.T) {
	g := newTestGame()

	g.Step(frame()) // paused, no tick
	if g.tick != 0 {
		t.Errorf("tick advanced while paused, got %d", g.tick)
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame())
	if g.tick != 2 {
		t.Errorf("tick = %d, expected 2", g.tick)
	}

	g.Step(frame(core.ActionPause)) // back to paused
	g.Step(frame())
	if g.tick != 2 {
		t.Errorf("tick = %d after re-pause, expected 2", g.tick)
	}
}
