package engine

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// EntityManager owns the flat id→entity pool for globally scheduled
// (non-scened) use. Entities are kept in creation order so every linear
// scan over them is stable and frame sequences are reproducible.
//
// Removal is two-phase: Destroy runs synchronously so cleanup callbacks
// fire immediately, but the physical map deletion is deferred into a
// pending set drained by Cleanup once per frame after all systems have
// run. No system ever observes the backing collection mutate
// mid-iteration.
type EntityManager struct {
	logger   *log.Logger
	nextID   uint64
	entities map[string]*Entity
	order    []string
	pending  map[string]struct{}
}

// NewEntityManager creates an empty entity pool.
func NewEntityManager(logger *log.Logger) *EntityManager {
	if logger == nil {
		logger = log.Default()
	}
	return &EntityManager{
		logger:   logger,
		entities: make(map[string]*Entity),
		pending:  make(map[string]struct{}),
	}
}

// CreateEntity registers a new entity under a generated ID.
func (m *EntityManager) CreateEntity() *Entity {
	m.nextID++
	return m.CreateEntityWithID(fmt.Sprintf("entity-%d", m.nextID))
}

// CreateEntityWithID registers a new entity under the caller's ID. Reusing
// an ID overwrites the prior entry; the overwrite is logged because the
// displaced entity is not destroyed.
func (m *EntityManager) CreateEntityWithID(id string) *Entity {
	if _, exists := m.entities[id]; exists {
		m.logger.Warn("entity id reused, prior entry overwritten", "id", id)
	} else {
		m.order = append(m.order, id)
	}
	e := NewEntity(id)
	m.entities[id] = e
	return e
}

// Get returns the entity with the given ID, or nil if unknown.
func (m *EntityManager) Get(id string) *Entity {
	return m.entities[id]
}

// Entities returns all registered entities in creation order, including
// inactive ones still awaiting cleanup.
func (m *EntityManager) Entities() []*Entity {
	result := make([]*Entity, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.entities[id])
	}
	return result
}

// EntitiesWithComponent returns active entities holding the component type.
// Linear scan; fine at arcade-scale entity counts.
func (m *EntityManager) EntitiesWithComponent(componentType string) []*Entity {
	return m.EntitiesWithComponents(componentType)
}

// EntitiesWithComponents returns active entities holding every listed
// component type, in creation order.
func (m *EntityManager) EntitiesWithComponents(componentTypes ...string) []*Entity {
	result := make([]*Entity, 0)
	for _, id := range m.order {
		e := m.entities[id]
		if !e.Active {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if !e.HasComponent(ct) {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, e)
		}
	}
	return result
}

// RemoveEntity destroys the entity immediately and schedules its physical
// removal for the next Cleanup. Unknown IDs are ignored.
func (m *EntityManager) RemoveEntity(id string) {
	e, ok := m.entities[id]
	if !ok {
		return
	}
	e.Destroy()
	m.pending[id] = struct{}{}
}

// Cleanup drains the pending-removal set. Call once per frame, after all
// systems have run.
func (m *EntityManager) Cleanup() {
	if len(m.pending) == 0 {
		return
	}
	for id := range m.pending {
		delete(m.entities, id)
	}
	kept := m.order[:0]
	for _, id := range m.order {
		if _, removed := m.pending[id]; !removed {
			kept = append(kept, id)
		}
	}
	m.order = kept
	m.pending = make(map[string]struct{})
}

// Len returns the number of registered entities, pending removals included.
func (m *EntityManager) Len() int {
	return len(m.entities)
}

// Clear destroys and removes every entity immediately.
func (m *EntityManager) Clear() {
	for _, id := range m.order {
		m.entities[id].Destroy()
	}
	m.entities = make(map[string]*Entity)
	m.order = nil
	m.pending = make(map[string]struct{})
}
