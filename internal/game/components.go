package game

import "github.com/dmgolubev/starblitz/internal/core"

// Component type discriminators.
const (
	SpriteType   = "sprite"
	HealthType   = "health"
	LifetimeType = "lifetime"
	WeaponType   = "weapon"
	ScoreType    = "score"
)

// Sprite is a single-cell glyph drawn at the entity's transform.
type Sprite struct {
	Glyph rune
	Color core.Color
}

func (s *Sprite) Type() string { return SpriteType }

// Health tracks hit points. Damage clamps at zero; Alive reports whether
// any points remain.
type Health struct {
	Current int
	Max     int
}

// NewHealth creates a health component at full points.
func NewHealth(max int) *Health {
	return &Health{Current: max, Max: max}
}

func (h *Health) Type() string { return HealthType }

// Damage subtracts points, clamping at zero, and reports whether the
// entity is still alive.
func (h *Health) Damage(points int) bool {
	h.Current -= points
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current > 0
}

// Heal restores points up to Max.
func (h *Health) Heal(points int) {
	h.Current += points
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Alive reports whether any hit points remain.
func (h *Health) Alive() bool { return h.Current > 0 }

// Lifetime expires after a fixed number of seconds. The lifetime system
// destroys the owning entity once Remaining reaches zero.
type Lifetime struct {
	Remaining float64
}

func (l *Lifetime) Type() string { return LifetimeType }

// Update burns down the remaining time.
func (l *Lifetime) Update(dt float64) {
	l.Remaining -= dt
}

// Expired reports whether the lifetime has run out.
func (l *Lifetime) Expired() bool { return l.Remaining <= 0 }

// Weapon is a cooldown gate for firing. Cooldown shrinks with the weapon
// tier so upgrades shoot faster.
type Weapon struct {
	Cooldown  float64
	sinceShot float64
}

// NewWeapon creates a weapon that can fire immediately.
func NewWeapon(cooldown float64) *Weapon {
	return &Weapon{Cooldown: cooldown, sinceShot: cooldown}
}

func (w *Weapon) Type() string { return WeaponType }

// Update advances the cooldown clock.
func (w *Weapon) Update(dt float64) {
	w.sinceShot += dt
}

// Ready reports whether the cooldown has elapsed.
func (w *Weapon) Ready() bool { return w.sinceShot >= w.Cooldown }

// Fire consumes the cooldown. It reports false when fired too soon.
func (w *Weapon) Fire() bool {
	if !w.Ready() {
		return false
	}
	w.sinceShot = 0
	return true
}

// Score is the point value awarded when the owning entity is destroyed
// by the player.
type Score struct {
	Points int
}

func (s *Score) Type() string { return ScoreType }
