// Package engine implements the entity-component runtime that drives every
// frame of the game: entities with typed capability bags, per-frame systems,
// the AABB collision engine, and the frame clock. It depends only on the
// core package so game logic stays pure and testable.
package engine

// Component is a typed capability attached to an entity. The type string is
// a discriminator unique per component kind, not per entity: an entity holds
// at most one component per type.
//
// Components may additionally implement Updatable and Destroyable; both are
// optional and discovered by interface assertion.
type Component interface {
	Type() string
}

// Updatable is implemented by components that advance their own state once
// per frame. Entities call Update on their components in the order the
// components were added, which makes multi-component updates deterministic.
type Updatable interface {
	Update(dt float64)
}

// Destroyable is implemented by components that hold resources needing
// teardown. Destroy is invoked exactly once, when the component is removed,
// replaced, or its owning entity is destroyed.
type Destroyable interface {
	Destroy()
}
