package engine

// System is a per-frame transform over a filtered entity subset. Systems
// run in registration order; the entity slice they receive is stable for
// the duration of the frame.
type System interface {
	// Name identifies the system; unique within an active system list.
	Name() string

	// Update processes the filtered entities for one frame.
	Update(entities []*Entity, dt float64)
}

// Filterer is an optional System capability restricting which entities the
// system sees. Without it a system receives every active entity.
type Filterer interface {
	Filter(e *Entity) bool
}

// Initializer is an optional System capability invoked once when the
// system is registered.
type Initializer interface {
	Init()
}

// Finalizer is an optional System capability invoked when the system is
// removed or its owner is torn down.
type Finalizer interface {
	Destroy()
}

// FilterEntities builds a system's view: active entities only, narrowed by
// the system's filter when it has one. Order of the input is preserved.
func FilterEntities(entities []*Entity, s System) []*Entity {
	filter, hasFilter := s.(Filterer)
	result := make([]*Entity, 0, len(entities))
	for _, e := range entities {
		if e == nil || !e.Active {
			continue
		}
		if hasFilter && !filter.Filter(e) {
			continue
		}
		result = append(result, e)
	}
	return result
}
