// Package registry owns all live game entities. It keeps a master
// insertion-order list (unique ownership, deterministic update order)
// plus an index grouped by entity kind for O(group size) typed queries.
//
// Destruction is deferred: collision code flags entities and Sweep
// removes them in a single batched pass after updates and resolution.
// That way nested iteration over multiple groups never invalidates a
// sequence a sibling loop is walking, and an entity destroyed mid-frame
// still participates in the rest of that frame's collision pass.
package registry

import (
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/entity"
)

// Registry is the owning container for all live entities. It is not
// safe for concurrent use; the game loop owns it exclusively and relies
// on strict phase ordering instead of locks.
type Registry struct {
	entities []entity.Entity
	groups   [entity.KindCount][]entity.Entity
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add inserts an entity into the master list and its kind group, and
// returns it. The reference stays valid until the entity is destroyed
// and swept. Growth is unbounded; the game keeps entity counts small.
func (r *Registry) Add(e entity.Entity) entity.Entity {
	k := e.Kind()
	r.groups[k] = append(r.groups[k], e)
	r.entities = append(r.entities, e)
	return e
}

// Len returns the number of entities in the master list, including any
// destroyed entities not yet swept.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Count returns the size of a kind group, including any destroyed
// entities not yet swept.
func (r *Registry) Count(k entity.Kind) int {
	return len(r.groups[k])
}

// Each applies fn to every member of a kind group in creation order.
// Destroyed-but-unswept entities are included; callers that flagged an
// entity earlier in the same frame must tolerate seeing it again.
// fn may mark entities destroyed but must not add or remove entities.
func (r *Registry) Each(k entity.Kind, fn func(entity.Entity)) {
	for _, e := range r.groups[k] {
		fn(e)
	}
}

// UpdateAll advances every entity by one tick, in insertion order.
func (r *Registry) UpdateAll(ctx *entity.Context) {
	for _, e := range r.entities {
		e.Update(ctx)
	}
}

// DrawAll renders every entity, in insertion order.
func (r *Registry) DrawAll(rd core.Renderer) {
	for _, e := range r.entities {
		e.Draw(rd)
	}
}

// Sweep removes every destroyed entity from the master list and from
// all kind groups. Running it again without intervening destruction is
// a no-op.
func (r *Registry) Sweep() {
	for k := range r.groups {
		r.groups[k] = compact(r.groups[k])
	}
	r.entities = compact(r.entities)
}

// Clear empties the registry entirely.
func (r *Registry) Clear() {
	r.entities = nil
	for k := range r.groups {
		r.groups[k] = nil
	}
}

// compact filters destroyed entities out of a slice in place.
func compact(es []entity.Entity) []entity.Entity {
	live := es[:0]
	for _, e := range es {
		if !e.Destroyed() {
			live = append(live, e)
		}
	}
	// Drop references past the new length so swept entities can be
	// collected.
	for i := len(live); i < len(es); i++ {
		es[i] = nil
	}
	return live
}

// kindOf derives the kind tag from a concrete entity type. Kind() is
// documented safe on nil receivers, so no instance is needed.
func kindOf[T entity.Entity]() entity.Kind {
	var zero T
	return zero.Kind()
}

// EachOf applies fn to every member of T's kind group in creation
// order. The group invariant guarantees the assertion holds; it is
// still checked so a corrupted registry fails loudly instead of
// misinterpreting memory.
func EachOf[T entity.Entity](r *Registry, fn func(T)) {
	for _, e := range r.groups[kindOf[T]()] {
		fn(e.(T))
	}
}

// QueryOf returns the live members of T's kind group in creation order.
func QueryOf[T entity.Entity](r *Registry) []T {
	group := r.groups[kindOf[T]()]
	out := make([]T, 0, len(group))
	for _, e := range group {
		out = append(out, e.(T))
	}
	return out
}

// CountOf returns the size of T's kind group.
func CountOf[T entity.Entity](r *Registry) int {
	return len(r.groups[kindOf[T]()])
}
