package game

import (
	"math/rand"

	"github.com/dmgolubev/starblitz/internal/core"
	"github.com/dmgolubev/starblitz/internal/engine"
)

// LifetimeSystem destroys entities whose lifetime component has expired.
// The component itself burns the clock during entity updates; this system
// only fires the destruction, so the entity is swept at the frame boundary.
type LifetimeSystem struct{}

func (s *LifetimeSystem) Name() string { return "lifetime" }

func (s *LifetimeSystem) Filter(e *engine.Entity) bool {
	return e.HasComponent(LifetimeType)
}

func (s *LifetimeSystem) Update(entities []*engine.Entity, dt float64) {
	for _, e := range entities {
		lt, ok := e.GetComponent(LifetimeType).(*Lifetime)
		if ok && lt.Expired() {
			e.Destroy()
		}
	}
}

// BoundsSystem destroys entities that drift past the world rectangle,
// padded so entities fully leave the screen before they disappear.
type BoundsSystem struct {
	World   core.RectF
	Padding float64
}

func (s *BoundsSystem) Name() string { return "bounds" }

func (s *BoundsSystem) Filter(e *engine.Entity) bool {
	return e.HasComponent(engine.TransformType)
}

func (s *BoundsSystem) Update(entities []*engine.Entity, dt float64) {
	limit := core.RectF{
		X:      s.World.X - s.Padding,
		Y:      s.World.Y - s.Padding,
		Width:  s.World.Width + 2*s.Padding,
		Height: s.World.Height + 2*s.Padding,
	}
	for _, e := range entities {
		t := engine.TransformOf(e)
		if t == nil {
			continue
		}
		p := t.Position
		if p.X < limit.X || p.X > limit.Right() || p.Y < limit.Y || p.Y > limit.Bottom() {
			e.Destroy()
		}
	}
}

// SpawnSystem drops enemies and pickups into the scene at a rate scaled
// by the current difficulty. Spawning is driven by a seeded RNG so runs
// are reproducible for a fixed seed.
type SpawnSystem struct {
	World core.RectF
	Rate  float64 // base spawns per second at difficulty 1
	// Spawn adds a new enemy entity at the given position with the given
	// downward speed. Wired by the gameplay scene.
	Spawn func(pos core.Vec2, speed float64)
	// DifficultyFunc reports the current difficulty, 1..10.
	DifficultyFunc func() int

	rng   *rand.Rand
	accum float64
}

// NewSpawnSystem creates a spawner with its own RNG stream.
func NewSpawnSystem(world core.RectF, rate float64, seed int64) *SpawnSystem {
	return &SpawnSystem{
		World: world,
		Rate:  rate,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Update(entities []*engine.Entity, dt float64) {
	if s.Spawn == nil {
		return
	}
	difficulty := 1
	if s.DifficultyFunc != nil {
		difficulty = s.DifficultyFunc()
	}
	rate := s.Rate * (1 + 0.35*float64(difficulty-1))
	s.accum += rate * dt
	for s.accum >= 1 {
		s.accum--
		x := s.World.X + s.rng.Float64()*s.World.Width
		speed := 4 + s.rng.Float64()*2*float64(difficulty)
		s.Spawn(core.Vec2{X: x, Y: s.World.Y - 1}, speed)
	}
}

// RenderSystem draws every sprite-bearing entity into the screen buffer.
// Positions are truncated to cell coordinates.
type RenderSystem struct {
	Screen *core.Screen
}

func (s *RenderSystem) Name() string { return "render" }

func (s *RenderSystem) Filter(e *engine.Entity) bool {
	return e.HasComponent(engine.TransformType) && e.HasComponent(SpriteType)
}

func (s *RenderSystem) Update(entities []*engine.Entity, dt float64) {
	if s.Screen == nil {
		return
	}
	for _, e := range entities {
		t := engine.TransformOf(e)
		sp, ok := e.GetComponent(SpriteType).(*Sprite)
		if t == nil || !ok {
			continue
		}
		s.Screen.SetCell(int(t.Position.X), int(t.Position.Y), sp.Glyph, sp.Color)
	}
}
