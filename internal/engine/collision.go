package engine

import "github.com/dmgolubev/starblitz/internal/core"

// DebugDrawer receives collider outlines when debug rendering is enabled.
// Implemented by the platform layer; the engine stays render-agnostic.
type DebugDrawer interface {
	StrokeCollider(rect core.RectF, trigger bool)
}

// CollisionSystem detects axis-aligned overlaps between every pair of
// entities carrying both a transform and an enabled collider, honoring the
// bidirectional layer/mask filter and distinguishing continuous "solid"
// notification from trigger enter/stay/exit semantics.
//
// Pairs are scanned in index order over the stable filtered list, so the
// sequence of collision and trigger events is deterministic and
// reproducible. The scan is O(n²), which is acceptable at arcade-scale
// entity counts; a broad-phase index would slot in ahead of the rectangle
// test without changing the callback contract.
//
// A callback that panics is not recovered here; it propagates out of
// Update and aborts the frame.
type CollisionSystem struct {
	debug  bool
	drawer DebugDrawer

	// Every collider this system has ever processed, so ClearState can
	// wipe trigger-contact memory system-wide. Contact sets themselves
	// are owned by the colliders.
	tracked map[*Collider]struct{}
}

// NewCollisionSystem creates a collision system with debug drawing off.
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{
		tracked: make(map[*Collider]struct{}),
	}
}

// Name identifies the system.
func (s *CollisionSystem) Name() string {
	return "collision"
}

// Filter admits entities holding both a transform and a collider.
func (s *CollisionSystem) Filter(e *Entity) bool {
	return e.HasComponent(TransformType) && e.HasComponent(ColliderType)
}

// SetDebug toggles the debug outline pass.
func (s *CollisionSystem) SetDebug(enabled bool) {
	s.debug = enabled
}

// AttachDrawer sets the outline sink used by the debug pass.
func (s *CollisionSystem) AttachDrawer(d DebugDrawer) {
	s.drawer = d
}

// ClearState wipes all recorded trigger-contact IDs system-wide without
// touching entities. The next overlapping frame re-fires trigger-enter
// even for pairs that were already touching.
func (s *CollisionSystem) ClearState() {
	for c := range s.tracked {
		c.clearContacts()
	}
	s.tracked = make(map[*Collider]struct{})
}

// Update runs the pairwise scan for one frame.
func (s *CollisionSystem) Update(entities []*Entity, dt float64) {
	for i := 0; i < len(entities); i++ {
		a := entities[i]
		colA := ColliderOf(a)
		trA := TransformOf(a)
		if colA == nil || trA == nil {
			continue
		}
		s.tracked[colA] = struct{}{}

		for j := i + 1; j < len(entities); j++ {
			b := entities[j]
			colB := ColliderOf(b)
			trB := TransformOf(b)
			if colB == nil || trB == nil {
				continue
			}
			s.tracked[colB] = struct{}{}

			if !colA.Enabled || !colB.Enabled {
				continue
			}

			// Each side must be configured to care about the other's
			// category; pairs failing either direction are skipped with
			// no trigger bookkeeping.
			if colA.Mask&colB.Layer == 0 || colB.Mask&colA.Layer == 0 {
				continue
			}

			rectA := colA.WorldRect(trA)
			rectB := colB.WorldRect(trB)

			intersection, overlapping := rectA.Intersection(rectB)
			if !overlapping {
				s.separated(a, colA, b, colB)
				continue
			}

			// Continuous notification fires every frame the overlap
			// persists, trigger or not.
			if colA.onCollision != nil {
				colA.onCollision(CollisionEvent{OtherID: b.ID, OtherCollider: colB, Intersection: intersection})
			}
			if colB.onCollision != nil {
				colB.onCollision(CollisionEvent{OtherID: a.ID, OtherCollider: colA, Intersection: intersection})
			}

			if colA.Trigger || colB.Trigger {
				s.triggerTouch(a, colA, b, colB, intersection)
			}
		}
	}

	if s.debug && s.drawer != nil {
		for _, e := range entities {
			col := ColliderOf(e)
			tr := TransformOf(e)
			if col == nil || tr == nil {
				continue
			}
			s.drawer.StrokeCollider(col.WorldRect(tr), col.Trigger)
		}
	}
}

// triggerTouch records new trigger contact and fires enter events exactly
// once per contact episode. While contact continues the recording stays
// and enter does not re-fire.
func (s *CollisionSystem) triggerTouch(a *Entity, colA *Collider, b *Entity, colB *Collider, intersection core.RectF) {
	if !colA.HasTriggerContact(b.ID) {
		colA.addContact(b.ID)
		if colA.onTriggerEnter != nil {
			colA.onTriggerEnter(CollisionEvent{OtherID: b.ID, OtherCollider: colB, Intersection: intersection})
		}
	}
	if !colB.HasTriggerContact(a.ID) {
		colB.addContact(a.ID)
		if colB.onTriggerEnter != nil {
			colB.onTriggerEnter(CollisionEvent{OtherID: a.ID, OtherCollider: colA, Intersection: intersection})
		}
	}
}

// separated ends a previously recorded contact episode: exit fires once
// per side when either side is a trigger, and the recorded IDs are removed.
func (s *CollisionSystem) separated(a *Entity, colA *Collider, b *Entity, colB *Collider) {
	trigger := colA.Trigger || colB.Trigger
	if colA.HasTriggerContact(b.ID) {
		colA.removeContact(b.ID)
		if trigger && colA.onTriggerExit != nil {
			colA.onTriggerExit(b.ID)
		}
	}
	if colB.HasTriggerContact(a.ID) {
		colB.removeContact(a.ID)
		if trigger && colB.onTriggerExit != nil {
			colB.onTriggerExit(a.ID)
		}
	}
}
