package engine

import (
	"time"

	"github.com/charmbracelet/log"
)

// maxDeltaTime caps the per-frame delta so a stalled process does not
// integrate one enormous step when ticks resume.
const maxDeltaTime = 0.25

// fpsSmoothing is the exponential moving average weight for the FPS gauge.
const fpsSmoothing = 0.9

// Engine is the top-level frame clock. It owns delta-time computation from
// successive tick timestamps and the flat-pool scheduling path for
// non-scened use: entity component updates, then systems in registration
// order over their filtered views, then the cleanup sweep.
//
// Its only contract with the rest of the core is to invoke Update once per
// logical frame; entities and systems are read-accessible between ticks.
type Engine struct {
	logger  *log.Logger
	manager *EntityManager
	systems []System

	running   bool
	lastTick  time.Time
	deltaTime float64
	fps       float64
}

// New creates a stopped engine with an empty entity pool.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		logger:  logger,
		manager: NewEntityManager(logger),
	}
}

// Manager returns the engine's flat entity pool.
func (e *Engine) Manager() *EntityManager {
	return e.manager
}

// AddSystem appends a system to the update order, invoking its optional
// Init hook.
func (e *Engine) AddSystem(s System) {
	if s == nil {
		return
	}
	if init, ok := s.(Initializer); ok {
		init.Init()
	}
	e.systems = append(e.systems, s)
}

// RemoveSystem removes the named system, invoking its optional Destroy
// hook. It reports whether a system was removed.
func (e *Engine) RemoveSystem(name string) bool {
	for i, s := range e.systems {
		if s.Name() != name {
			continue
		}
		if fin, ok := s.(Finalizer); ok {
			fin.Destroy()
		}
		e.systems = append(e.systems[:i], e.systems[i+1:]...)
		return true
	}
	return false
}

// Systems returns the registered systems in update order.
func (e *Engine) Systems() []System {
	return append([]System(nil), e.systems...)
}

// Start begins frame timing. Calling Start on a running engine warns and
// no-ops.
func (e *Engine) Start() {
	if e.running {
		e.logger.Warn("engine already running, start ignored")
		return
	}
	e.running = true
	e.lastTick = time.Time{}
}

// Stop halts frame timing. Safe to call on a stopped engine.
func (e *Engine) Stop() {
	e.running = false
}

// Running reports whether the engine's clock is active.
func (e *Engine) Running() bool {
	return e.running
}

// Tick advances one frame using the wall-clock timestamp. The first tick
// after Start only records the timestamp; subsequent ticks compute the
// delta, clamp it, and run the frame.
func (e *Engine) Tick(now time.Time) {
	if !e.running {
		return
	}
	if e.lastTick.IsZero() {
		e.lastTick = now
		return
	}
	dt := now.Sub(e.lastTick).Seconds()
	e.lastTick = now
	if dt <= 0 {
		return
	}
	if dt > maxDeltaTime {
		dt = maxDeltaTime
	}
	e.deltaTime = dt
	e.fps = e.fps*fpsSmoothing + (1.0/dt)*(1.0-fpsSmoothing)
	e.Update(dt)
}

// Update runs one synchronous frame pass over the flat pool: active
// entities update their own components, each system runs over its filtered
// view in registration order, and inactive entities are swept.
func (e *Engine) Update(dt float64) {
	entities := e.manager.Entities()
	for _, ent := range entities {
		if ent.Active {
			ent.Update(dt)
		}
	}
	for _, s := range e.systems {
		s.Update(FilterEntities(entities, s), dt)
	}
	for _, ent := range entities {
		if !ent.Active {
			e.manager.RemoveEntity(ent.ID)
		}
	}
	e.manager.Cleanup()
}

// DeltaTime returns the last computed frame delta in seconds.
func (e *Engine) DeltaTime() float64 {
	return e.deltaTime
}

// FPS returns the smoothed frames-per-second estimate.
func (e *Engine) FPS() float64 {
	return e.fps
}
