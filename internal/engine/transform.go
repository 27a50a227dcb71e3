package engine

import "github.com/dmgolubev/starblitz/internal/core"

// TransformType is the component discriminator for Transform.
const TransformType = "transform"

// Transform carries an entity's position, velocity, rotation, and scale.
// Its per-frame update integrates position by velocity; this is the only
// physics the engine performs.
type Transform struct {
	Position core.Vec2
	Velocity core.Vec2
	Rotation float64
	Scale    float64
}

// NewTransform creates a transform at the given position with unit scale.
func NewTransform(x, y float64) *Transform {
	return &Transform{
		Position: core.Vec2{X: x, Y: y},
		Scale:    1.0,
	}
}

// Type returns the component discriminator.
func (t *Transform) Type() string {
	return TransformType
}

// Update integrates position += velocity * dt.
func (t *Transform) Update(dt float64) {
	t.Position = t.Position.Add(t.Velocity.Scale(dt))
}

// TransformOf returns the entity's transform, or nil if it has none.
func TransformOf(e *Entity) *Transform {
	if c := e.GetComponent(TransformType); c != nil {
		if t, ok := c.(*Transform); ok {
			return t
		}
	}
	return nil
}
