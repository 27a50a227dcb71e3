package engine

// Entity is an identity plus a bag of components. An inactive entity is
// excluded from every system's view and will be physically removed from its
// owning collection on the next cleanup pass.
type Entity struct {
	ID     string
	Active bool

	components map[string]Component
	order      []string // component types in insertion order
}

// NewEntity creates an active entity with the given ID.
func NewEntity(id string) *Entity {
	return &Entity{
		ID:         id,
		Active:     true,
		components: make(map[string]Component),
	}
}

// AddComponent stores a component keyed by its type. If a component of the
// same type already exists it is destroyed first and then replaced; the
// replacement keeps the original position in the update order.
func (e *Entity) AddComponent(c Component) {
	if c == nil {
		return
	}
	key := c.Type()
	if prev, exists := e.components[key]; exists {
		destroyComponent(prev)
	} else {
		e.order = append(e.order, key)
	}
	e.components[key] = c
}

// GetComponent returns the component of the given type, or nil if the
// entity does not hold one. It never constructs a default.
func (e *Entity) GetComponent(componentType string) Component {
	return e.components[componentType]
}

// HasComponent reports whether the entity holds a component of the type.
func (e *Entity) HasComponent(componentType string) bool {
	_, ok := e.components[componentType]
	return ok
}

// RemoveComponent destroys and removes the component of the given type.
// It reports whether anything was removed.
func (e *Entity) RemoveComponent(componentType string) bool {
	c, ok := e.components[componentType]
	if !ok {
		return false
	}
	destroyComponent(c)
	delete(e.components, componentType)
	for i, key := range e.order {
		if key == componentType {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	return true
}

// Components returns the entity's components in insertion order.
func (e *Entity) Components() []Component {
	result := make([]Component, 0, len(e.order))
	for _, key := range e.order {
		result = append(result, e.components[key])
	}
	return result
}

// Update advances every updatable component, in insertion order.
func (e *Entity) Update(dt float64) {
	for _, key := range e.order {
		if u, ok := e.components[key].(Updatable); ok {
			u.Update(dt)
		}
	}
}

// Destroy deactivates the entity, destroys every owned component exactly
// once, and empties the component bag. Calling Destroy again is a no-op.
func (e *Entity) Destroy() {
	e.Active = false
	for _, key := range e.order {
		destroyComponent(e.components[key])
	}
	e.components = make(map[string]Component)
	e.order = nil
}

func destroyComponent(c Component) {
	if d, ok := c.(Destroyable); ok {
		d.Destroy()
	}
}
