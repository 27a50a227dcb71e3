package engine

import "github.com/dmgolubev/starblitz/internal/core"

// ColliderType is the component discriminator for Collider.
const ColliderType = "collider"

// CollisionEvent describes one side of a detected overlap. It is built
// fresh per pair per frame; each side receives the other's identity.
type CollisionEvent struct {
	OtherID       string
	OtherCollider *Collider
	Intersection  core.RectF
}

// Collider gives an entity an axis-aligned collision box relative to its
// transform, layer/mask filtering, and trigger semantics.
//
// Layer is the bitmask of what this entity is; Mask is the bitmask of what
// it reacts to. A pair interacts only if each side's mask selects the
// other's layer.
//
// The set of other-entity IDs currently in trigger contact is owned by the
// collider instance and travels with the entity; it persists across frames
// until contact ends or the collision system's state is cleared.
type Collider struct {
	Width, Height    float64
	OffsetX, OffsetY float64
	Layer, Mask      uint32
	Enabled          bool
	Trigger          bool

	onCollision    func(CollisionEvent)
	onTriggerEnter func(CollisionEvent)
	onTriggerExit  func(otherID string)

	contacts map[string]struct{}
}

// NewCollider creates an enabled, non-trigger collider.
func NewCollider(width, height, offsetX, offsetY float64, layer, mask uint32) *Collider {
	return &Collider{
		Width:    width,
		Height:   height,
		OffsetX:  offsetX,
		OffsetY:  offsetY,
		Layer:    layer,
		Mask:     mask,
		Enabled:  true,
		contacts: make(map[string]struct{}),
	}
}

// Type returns the component discriminator.
func (c *Collider) Type() string {
	return ColliderType
}

// SetCollisionCallback registers the per-frame overlap callback.
func (c *Collider) SetCollisionCallback(fn func(CollisionEvent)) {
	c.onCollision = fn
}

// SetTriggerEnterCallback registers the trigger-contact-start callback.
func (c *Collider) SetTriggerEnterCallback(fn func(CollisionEvent)) {
	c.onTriggerEnter = fn
}

// SetTriggerExitCallback registers the trigger-contact-end callback.
func (c *Collider) SetTriggerExitCallback(fn func(otherID string)) {
	c.onTriggerExit = fn
}

// SetEnabled toggles collision detection for this collider.
func (c *Collider) SetEnabled(enabled bool) {
	c.Enabled = enabled
}

// SetTrigger toggles trigger semantics for this collider.
func (c *Collider) SetTrigger(trigger bool) {
	c.Trigger = trigger
}

// SetLayer replaces the collider's layer bitmask.
func (c *Collider) SetLayer(layer uint32) {
	c.Layer = layer
}

// SetMask replaces the collider's mask bitmask.
func (c *Collider) SetMask(mask uint32) {
	c.Mask = mask
}

// HasTriggerContact reports whether the given entity is currently recorded
// as being in trigger contact with this collider.
func (c *Collider) HasTriggerContact(entityID string) bool {
	_, ok := c.contacts[entityID]
	return ok
}

// WorldRect combines the owner transform's position with the collider's
// local box to yield the world-space rectangle.
func (c *Collider) WorldRect(t *Transform) core.RectF {
	return core.RectF{
		X:      t.Position.X + c.OffsetX,
		Y:      t.Position.Y + c.OffsetY,
		Width:  c.Width,
		Height: c.Height,
	}
}

func (c *Collider) addContact(entityID string) {
	if c.contacts == nil {
		c.contacts = make(map[string]struct{})
	}
	c.contacts[entityID] = struct{}{}
}

func (c *Collider) removeContact(entityID string) {
	delete(c.contacts, entityID)
}

func (c *Collider) clearContacts() {
	c.contacts = make(map[string]struct{})
}

// ColliderOf returns the entity's collider, or nil if it has none.
func ColliderOf(e *Entity) *Collider {
	if c := e.GetComponent(ColliderType); c != nil {
		if col, ok := c.(*Collider); ok {
			return col
		}
	}
	return nil
}
