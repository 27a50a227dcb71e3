package engine

import (
	"testing"
)

// probe is a test component that records lifecycle calls.
type probe struct {
	kind     string
	updates  int
	destroys int
	log      *[]string
}

func (p *probe) Type() string { return p.kind }

func (p *probe) Update(dt float64) {
	p.updates++
	if p.log != nil {
		*p.log = append(*p.log, p.kind)
	}
}

func (p *probe) Destroy() { p.destroys++ }

// bare is a component with no optional capabilities.
type bare struct{ kind string }

func (b *bare) Type() string { return b.kind }

func TestEntityAddGetComponent(t *testing.T) {
	e := NewEntity("e1")

	c := &probe{kind: "health"}
	e.AddComponent(c)

	if !e.HasComponent("health") {
		t.Error("HasComponent should report the added component")
	}
	if got := e.GetComponent("health"); got != Component(c) {
		t.Errorf("GetComponent returned %v, expected the stored instance", got)
	}
	if e.GetComponent("absent") != nil {
		t.Error("GetComponent should return nil for an absent type")
	}
}

func TestEntityDuplicateAddReplacesAndDestroysPrior(t *testing.T) {
	e := NewEntity("e1")

	first := &probe{kind: "weapon"}
	second := &probe{kind: "weapon"}
	e.AddComponent(first)
	e.AddComponent(second)

	// The second replaces the first in the map.
	if got := e.GetComponent("weapon"); got != Component(second) {
		t.Error("GetComponent should return the replacement component")
	}
	// The replaced component is torn down, not leaked.
	if first.destroys != 1 {
		t.Errorf("replaced component destroyed %d times, expected 1", first.destroys)
	}
	if second.destroys != 0 {
		t.Error("replacement component should not be destroyed by the add")
	}
	if len(e.Components()) != 1 {
		t.Errorf("entity holds %d components, expected 1", len(e.Components()))
	}
}

func TestEntityRemoveComponent(t *testing.T) {
	e := NewEntity("e1")
	c := &probe{kind: "shield"}
	e.AddComponent(c)

	if !e.RemoveComponent("shield") {
		t.Error("RemoveComponent should report removal")
	}
	if c.destroys != 1 {
		t.Errorf("component destroyed %d times, expected 1", c.destroys)
	}
	if e.HasComponent("shield") {
		t.Error("component should be gone after removal")
	}
	if e.RemoveComponent("shield") {
		t.Error("second RemoveComponent should report nothing removed")
	}
}

func TestEntityUpdateOrderIsInsertionOrder(t *testing.T) {
	e := NewEntity("e1")
	var calls []string
	e.AddComponent(&probe{kind: "first", log: &calls})
	e.AddComponent(&bare{kind: "inert"}) // no Update capability
	e.AddComponent(&probe{kind: "second", log: &calls})
	e.AddComponent(&probe{kind: "third", log: &calls})

	for i := 0; i < 3; i++ {
		calls = calls[:0]
		e.Update(0.016)
		want := []string{"first", "second", "third"}
		for j, kind := range want {
			if j >= len(calls) || calls[j] != kind {
				t.Fatalf("update order = %v, expected %v", calls, want)
			}
		}
	}
}

func TestEntityReplacementKeepsUpdatePosition(t *testing.T) {
	e := NewEntity("e1")
	var calls []string
	e.AddComponent(&probe{kind: "a", log: &calls})
	e.AddComponent(&probe{kind: "b", log: &calls})
	e.AddComponent(&probe{kind: "a", log: &calls}) // replace in place

	e.Update(0.016)
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("update order after replacement = %v, expected [a b]", calls)
	}
}

func TestEntityDestroyIdempotent(t *testing.T) {
	e := NewEntity("e1")
	c1 := &probe{kind: "one"}
	c2 := &probe{kind: "two"}
	e.AddComponent(c1)
	e.AddComponent(c2)

	e.Destroy()

	if e.Active {
		t.Error("Destroy should deactivate the entity")
	}
	if c1.destroys != 1 || c2.destroys != 1 {
		t.Errorf("components destroyed (%d, %d) times, expected (1, 1)", c1.destroys, c2.destroys)
	}
	if len(e.Components()) != 0 {
		t.Error("Destroy should empty the component bag")
	}

	// Repeat call reaches the same end state without re-destroying.
	e.Destroy()
	if c1.destroys != 1 || c2.destroys != 1 {
		t.Error("repeated Destroy must not re-destroy components")
	}
}

func TestEntityDestroyedIsInert(t *testing.T) {
	e := NewEntity("e1")
	p := &probe{kind: "p"}
	e.AddComponent(p)
	e.Destroy()

	e.Update(0.016)
	if p.updates != 0 {
		t.Error("destroyed entity must not update former components")
	}
}
