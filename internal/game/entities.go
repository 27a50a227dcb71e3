package game

import (
	"fmt"

	"github.com/dmgolubev/starblitz/internal/core"
	"github.com/dmgolubev/starblitz/internal/engine"
)

// Entity constructors. Each builds a fully wired entity; collision
// callbacks are attached by the gameplay scene, which owns the session
// state the callbacks mutate.

func (g *Game) nextID(prefix string) string {
	g.idSeq++
	return fmt.Sprintf("%s-%d", prefix, g.idSeq)
}

// newPlayer builds the player ship at the given position.
func (g *Game) newPlayer(pos core.Vec2) *engine.Entity {
	e := engine.NewEntity("player")
	e.AddComponent(engine.NewTransform(pos.X, pos.Y))
	e.AddComponent(&Sprite{Glyph: 'A', Color: core.ColorCyan})
	e.AddComponent(NewHealth(3))
	e.AddComponent(NewWeapon(g.fireCooldown()))
	e.AddComponent(engine.NewCollider(3, 1, -1, 0, LayerPlayer, MaskPlayer))
	return e
}

// newEnemy builds a rock drifting downward at the given speed.
func (g *Game) newEnemy(pos core.Vec2, speed float64) *engine.Entity {
	e := engine.NewEntity(g.nextID("enemy"))
	t := engine.NewTransform(pos.X, pos.Y)
	t.Velocity = core.Vec2{Y: speed}
	e.AddComponent(t)
	e.AddComponent(&Sprite{Glyph: '*', Color: core.ColorRed})
	e.AddComponent(NewHealth(1))
	e.AddComponent(&Score{Points: 10 * g.state.Difficulty()})
	e.AddComponent(engine.NewCollider(1, 1, 0, 0, LayerEnemy, MaskEnemy))
	return e
}

// newPlayerShot builds an upward beam shot from the given muzzle position.
func (g *Game) newPlayerShot(pos core.Vec2) *engine.Entity {
	e := engine.NewEntity(g.nextID("shot"))
	t := engine.NewTransform(pos.X, pos.Y)
	t.Velocity = core.Vec2{Y: -30}
	e.AddComponent(t)
	e.AddComponent(&Sprite{Glyph: '|', Color: core.ColorYellow})
	e.AddComponent(&Lifetime{Remaining: 2})
	c := engine.NewCollider(1, 1, 0, 0, LayerPlayerShot, MaskPlayerShot)
	c.SetTrigger(true)
	e.AddComponent(c)
	return e
}

// newMissile builds a faster, wider shot spending the missile counter.
func (g *Game) newMissile(pos core.Vec2) *engine.Entity {
	e := engine.NewEntity(g.nextID("missile"))
	t := engine.NewTransform(pos.X, pos.Y)
	t.Velocity = core.Vec2{Y: -45}
	e.AddComponent(t)
	e.AddComponent(&Sprite{Glyph: '!', Color: core.ColorMagenta})
	e.AddComponent(&Lifetime{Remaining: 2})
	c := engine.NewCollider(3, 1, -1, 0, LayerPlayerShot, MaskPlayerShot)
	c.SetTrigger(true)
	e.AddComponent(c)
	return e
}

// newPickup builds a drifting power-up. Kind selects the effect applied
// on collection.
func (g *Game) newPickup(pos core.Vec2, kind PickupKind) *engine.Entity {
	e := engine.NewEntity(g.nextID("pickup"))
	t := engine.NewTransform(pos.X, pos.Y)
	t.Velocity = core.Vec2{Y: 3}
	e.AddComponent(t)
	e.AddComponent(&Sprite{Glyph: '+', Color: core.ColorGreen})
	e.AddComponent(&Pickup{Kind: kind})
	e.AddComponent(&Lifetime{Remaining: 12})
	c := engine.NewCollider(1, 1, 0, 0, LayerPickup, MaskPickup)
	c.SetTrigger(true)
	e.AddComponent(c)
	return e
}

// PickupKind selects a power-up effect.
type PickupKind string

const (
	PickupWeapon  PickupKind = "weapon"
	PickupMissile PickupKind = "missile"
	PickupSpecial PickupKind = "special"
	PickupLife    PickupKind = "life"
)

// Pickup marks an entity as a collectible power-up.
type Pickup struct {
	Kind PickupKind
}

const PickupType = "pickup"

func (p *Pickup) Type() string { return PickupType }

// fireCooldown derives the beam cooldown from the weapon tier.
func (g *Game) fireCooldown() float64 {
	tier := g.state.Weapons().Beam
	cd := 0.35 - 0.07*float64(tier)
	if cd < 0.1 {
		cd = 0.1
	}
	return cd
}
