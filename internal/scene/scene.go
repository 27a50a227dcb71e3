// Package scene provides isolated entity and system pools bound to game
// modes, and the manager that owns the single active scene. Scenes are
// constructed once at startup and persist for the session; their pools are
// rebuilt on every entry so each mode starts from a deterministic layout.
package scene

import (
	"github.com/dmgolubev/starblitz/internal/core"
	"github.com/dmgolubev/starblitz/internal/engine"
)

// Scene is a named bundle of entities and systems representing one game
// mode. All hooks are optional; absent hooks are simply skipped.
type Scene struct {
	Name string

	// OnEnter rebuilds the scene's pools when the scene becomes active.
	OnEnter func()
	// OnExit runs before the scene's pools are torn down on transition.
	OnExit func()
	// UpdateFunc runs scene-specific logic at the top of each frame,
	// before systems.
	UpdateFunc func(dt float64)
	// RenderFunc draws the scene into the screen buffer.
	RenderFunc func(screen *core.Screen)
	// HandleInputFunc consumes the input snapshot for this frame.
	HandleInputFunc func(in core.InputFrame)
	// DestroyFunc runs extra teardown when the scene is destroyed for good.
	DestroyFunc func()

	entities []*engine.Entity
	systems  []engine.System
}

// New creates an empty scene with the given name.
func New(name string) *Scene {
	return &Scene{Name: name}
}

// AddEntity appends an entity to the scene's pool.
func (s *Scene) AddEntity(e *engine.Entity) {
	if e == nil {
		return
	}
	s.entities = append(s.entities, e)
}

// Entity returns the pooled entity with the given ID, or nil. Linear scan;
// fine at arcade-scale pool sizes.
func (s *Scene) Entity(id string) *engine.Entity {
	for _, e := range s.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Entities returns the scene's entity pool in insertion order.
func (s *Scene) Entities() []*engine.Entity {
	return s.entities
}

// RemoveEntity destroys the pooled entity with the given ID. The entity
// stays in the pool, inactive, until the end-of-frame sweep.
func (s *Scene) RemoveEntity(id string) {
	if e := s.Entity(id); e != nil {
		e.Destroy()
	}
}

// AddSystem appends a system to the scene's update order, invoking its
// optional Init hook.
func (s *Scene) AddSystem(sys engine.System) {
	if sys == nil {
		return
	}
	if init, ok := sys.(engine.Initializer); ok {
		init.Init()
	}
	s.systems = append(s.systems, sys)
}

// Systems returns the scene's systems in registration order.
func (s *Scene) Systems() []engine.System {
	return s.systems
}

// Enter activates the scene. The OnEnter hook is responsible for building
// the entity and system pools.
func (s *Scene) Enter() {
	if s.OnEnter != nil {
		s.OnEnter()
	}
}

// Exit runs the OnExit hook and tears down the scene's pools so no entity
// or system instance leaks across a scene boundary.
func (s *Scene) Exit() {
	if s.OnExit != nil {
		s.OnExit()
	}
	s.Clear()
}

// Clear destroys every pooled entity, finalizes every system, and empties
// both lists.
func (s *Scene) Clear() {
	for _, e := range s.entities {
		e.Destroy()
	}
	s.entities = nil
	for _, sys := range s.systems {
		if fin, ok := sys.(engine.Finalizer); ok {
			fin.Destroy()
		}
	}
	s.systems = nil
}

// Update runs one frame: the scene hook, then each system in registration
// order over its filtered view, then active entities' own component
// updates, then the mark-and-sweep of inactive entities.
func (s *Scene) Update(dt float64) {
	if s.UpdateFunc != nil {
		s.UpdateFunc(dt)
	}

	entities := s.entities
	for _, sys := range s.systems {
		sys.Update(engine.FilterEntities(entities, sys), dt)
	}

	for _, e := range entities {
		if e.Active {
			e.Update(dt)
		}
	}

	s.sweep()
}

// sweep compacts the entity pool, dropping inactive entries. Runs at the
// frame boundary so no system observes the list mutate mid-iteration.
func (s *Scene) sweep() {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Active {
			kept = append(kept, e)
		}
	}
	// Release trailing slots so swept entities can be collected.
	for i := len(kept); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = kept
}

// Render delegates to the scene's render hook.
func (s *Scene) Render(screen *core.Screen) {
	if s.RenderFunc != nil {
		s.RenderFunc(screen)
	}
}

// HandleInput delegates to the scene's input hook.
func (s *Scene) HandleInput(in core.InputFrame) {
	if s.HandleInputFunc != nil {
		s.HandleInputFunc(in)
	}
}

// Destroy tears down the scene for good.
func (s *Scene) Destroy() {
	s.Clear()
	if s.DestroyFunc != nil {
		s.DestroyFunc()
	}
}
