package engine

import (
	"testing"
	"time"
)

// recordingSystem captures the entity views it receives.
type recordingSystem struct {
	name    string
	need    string // component type filter; empty admits all
	frames  [][]string
	inits   int
	destroy int
}

func (r *recordingSystem) Name() string { return r.name }

func (r *recordingSystem) Update(entities []*Entity, dt float64) {
	r.frames = append(r.frames, ids(entities))
}

func (r *recordingSystem) Filter(e *Entity) bool {
	return r.need == "" || e.HasComponent(r.need)
}

func (r *recordingSystem) Init()    { r.inits++ }
func (r *recordingSystem) Destroy() { r.destroy++ }

func TestEngineStartIdempotent(t *testing.T) {
	e := New(testLogger())

	e.Start()
	if !e.Running() {
		t.Fatal("engine should be running after Start")
	}
	e.Start() // warns and no-ops
	if !e.Running() {
		t.Error("second Start must leave the engine running")
	}

	e.Stop()
	if e.Running() {
		t.Error("engine should stop")
	}
	e.Stop() // safe to repeat
}

func TestEngineTickComputesDelta(t *testing.T) {
	e := New(testLogger())
	e.Start()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e.Tick(base) // first tick only records the timestamp
	if e.DeltaTime() != 0 {
		t.Error("first tick must not produce a delta")
	}

	e.Tick(base.Add(16 * time.Millisecond))
	if got := e.DeltaTime(); got < 0.015 || got > 0.017 {
		t.Errorf("DeltaTime() = %f, expected ~0.016", got)
	}
	if e.FPS() <= 0 {
		t.Error("FPS should be positive after a timed tick")
	}

	// A long stall is clamped, not integrated wholesale.
	e.Tick(base.Add(10 * time.Second))
	if e.DeltaTime() > maxDeltaTime {
		t.Errorf("DeltaTime() = %f, expected clamp at %f", e.DeltaTime(), maxDeltaTime)
	}
}

func TestEngineTickIgnoredWhenStopped(t *testing.T) {
	e := New(testLogger())
	sys := &recordingSystem{name: "observer"}
	e.AddSystem(sys)

	e.Tick(time.Now())
	if len(sys.frames) != 0 {
		t.Error("a stopped engine must not run frames")
	}
}

func TestEngineFlatScheduling(t *testing.T) {
	e := New(testLogger())
	m := e.Manager()

	mover := m.CreateEntityWithID("mover")
	tr := NewTransform(0, 0)
	tr.Velocity.X = 10
	mover.AddComponent(tr)

	idle := m.CreateEntityWithID("idle")
	idle.AddComponent(&probe{kind: "tag"})

	all := &recordingSystem{name: "all"}
	tagged := &recordingSystem{name: "tagged", need: "tag"}
	e.AddSystem(all)
	e.AddSystem(tagged)
	if all.inits != 1 || tagged.inits != 1 {
		t.Error("AddSystem should invoke the optional Init hook")
	}

	e.Update(0.5)

	// Entity component updates ran before systems.
	if tr.Position.X != 5 {
		t.Errorf("transform integrated to %f, expected 5", tr.Position.X)
	}
	// Each system saw its filtered view.
	if len(all.frames) != 1 || len(all.frames[0]) != 2 {
		t.Errorf("unfiltered system saw %v", all.frames)
	}
	if len(tagged.frames) != 1 || len(tagged.frames[0]) != 1 || tagged.frames[0][0] != "idle" {
		t.Errorf("filtered system saw %v", tagged.frames)
	}
}

func TestEngineSweepsInactiveEntities(t *testing.T) {
	e := New(testLogger())
	m := e.Manager()

	doomed := m.CreateEntityWithID("doomed")
	doomed.AddComponent(&probe{kind: "tag"})
	survivor := m.CreateEntityWithID("survivor")
	survivor.AddComponent(&probe{kind: "tag"})

	sys := &recordingSystem{name: "watcher", need: "tag"}
	e.AddSystem(sys)

	doomed.Destroy()
	e.Update(0.016)

	// Inactive entity was excluded from the system view this frame...
	if len(sys.frames[0]) != 1 || sys.frames[0][0] != "survivor" {
		t.Errorf("system view = %v, expected only survivor", sys.frames[0])
	}
	// ...and physically removed after the cleanup pass.
	if m.Get("doomed") != nil {
		t.Error("inactive entity should be swept after the frame")
	}
	if m.Get("survivor") == nil {
		t.Error("active entity must survive the sweep")
	}
}

func TestEngineRemoveSystem(t *testing.T) {
	e := New(testLogger())
	sys := &recordingSystem{name: "temp"}
	e.AddSystem(sys)

	if !e.RemoveSystem("temp") {
		t.Error("RemoveSystem should report removal")
	}
	if sys.destroy != 1 {
		t.Error("RemoveSystem should invoke the optional Destroy hook")
	}
	if e.RemoveSystem("temp") {
		t.Error("removing an absent system should report false")
	}

	e.Update(0.016)
	if len(sys.frames) != 0 {
		t.Error("removed system must not run")
	}
}

func TestEngineSystemsRunInRegistrationOrder(t *testing.T) {
	e := New(testLogger())
	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		e.AddSystem(&hookSystem{name: name, fn: func() { order = append(order, name) }})
	}

	e.Update(0.016)

	want := []string{"first", "second", "third"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("system order = %v, expected %v", order, want)
		}
	}
}

// hookSystem invokes a closure on update.
type hookSystem struct {
	name string
	fn   func()
}

func (h *hookSystem) Name() string                         { return h.name }
func (h *hookSystem) Update(entities []*Entity, dt float64) { h.fn() }
