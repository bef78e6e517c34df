// Package entity defines the game's entity variants (Ball, Paddle,
// Brick) behind a common lifecycle contract. Entities update their own
// state each tick, draw themselves through the core.Renderer contract,
// and carry a destroyed flag consumed by the registry's sweep phase.
package entity

import (
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Kind is the variant tag of an entity. The registry groups entities by
// kind, so typed queries never rely on runtime type identification.
type Kind int

const (
	KindBall Kind = iota
	KindPaddle
	KindBrick

	// KindCount is the number of entity kinds; used to size the
	// registry's group index.
	KindCount
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "Ball"
	case KindPaddle:
		return "Paddle"
	case KindBrick:
		return "Brick"
	default:
		return "Unknown"
	}
}

// Context carries the per-tick data entities need to update themselves:
// the input frame and the logical field bounds. It replaces any global
// game state.
type Context struct {
	Input  core.InputFrame
	FieldW float64
	FieldH float64
}

// Entity is the lifecycle contract shared by all game objects.
// Destruction is deferred: entities mark themselves destroyed and the
// registry removes them during its sweep phase, never mid-iteration.
type Entity interface {
	// Kind returns the variant tag. Safe to call on a nil pointer of
	// any concrete entity type.
	Kind() Kind

	// Update advances the entity's own simulation by one tick.
	Update(ctx *Context)

	// Draw renders the entity through the renderer contract.
	Draw(r core.Renderer)

	// Destroyed reports whether the entity is flagged for removal.
	Destroyed() bool

	// MarkDestroyed flags the entity for removal at the next sweep.
	MarkDestroyed()
}

// tombstone is the destroyed flag embedded by all entity variants.
type tombstone struct {
	destroyed bool
}

// Destroyed reports whether the entity is flagged for removal.
func (t *tombstone) Destroyed() bool { return t.destroyed }

// MarkDestroyed flags the entity for removal at the next sweep.
func (t *tombstone) MarkDestroyed() { t.destroyed = true }
