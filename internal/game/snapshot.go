package game

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/arkanoid/internal/entity"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// Snapshot captures the observable simulation state. Uses primitive
// types only so two runs can be compared field by field or through
// Hash. Entities appear in registry creation order, which is itself
// deterministic.
type Snapshot struct {
	Tick  uint64
	State string
	Lives int

	PaddleX float64
	PaddleY float64

	// Ball state; zero values when no ball is alive.
	BallCount int
	BallX     float64
	BallY     float64
	BallVX    float64
	BallVY    float64

	// Bricks flattened in creation order: x, y, requiredHits per brick.
	BrickCount int
	BrickData  []float64
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.tick,
		State: g.state.String(),
		Lives: g.remainingLives,
	}

	registry.EachOf(g.reg, func(p *entity.Paddle) {
		snap.PaddleX = p.X()
		snap.PaddleY = p.Y()
	})

	registry.EachOf(g.reg, func(b *entity.Ball) {
		snap.BallCount++
		snap.BallX = b.X()
		snap.BallY = b.Y()
		snap.BallVX = b.Velocity.X
		snap.BallVY = b.Velocity.Y
	})

	snap.BrickCount = registry.CountOf[*entity.Brick](g.reg)
	snap.BrickData = make([]float64, 0, snap.BrickCount*3)
	registry.EachOf(g.reg, func(b *entity.Brick) {
		snap.BrickData = append(snap.BrickData, b.X(), b.Y(), float64(b.RequiredHits))
	})

	return snap
}

// Hash returns an FNV-1a digest of the snapshot, for cheap equality
// checks in determinism tests.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeF64 := func(v float64) {
		writeU64(math.Float64bits(v))
	}

	writeU64(s.Tick)
	h.Write([]byte(s.State))
	writeU64(uint64(int64(s.Lives)))
	writeF64(s.PaddleX)
	writeF64(s.PaddleY)
	writeU64(uint64(s.BallCount))
	writeF64(s.BallX)
	writeF64(s.BallY)
	writeF64(s.BallVX)
	writeF64(s.BallVY)
	writeU64(uint64(s.BrickCount))
	for _, v := range s.BrickData {
		writeF64(v)
	}

	return h.Sum64()
}
