package scene

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/dmgolubev/starblitz/internal/core"
)

// Manager owns the scene registry and the single active scene. Transition
// requests made mid-frame are deferred and applied at the next frame
// boundary, so a scene never gets torn down underneath its own update.
type Manager struct {
	logger  *log.Logger
	scenes  map[string]*Scene
	current *Scene
	pending string
}

// NewManager creates an empty scene manager.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		logger: logger,
		scenes: make(map[string]*Scene),
	}
}

// Register adds a scene under the given key. Registering the same key
// twice replaces the previous scene.
func (m *Manager) Register(key string, s *Scene) {
	if s == nil {
		return
	}
	m.scenes[key] = s
}

// Current returns the active scene, or nil before the first transition.
func (m *Manager) Current() *Scene {
	return m.current
}

// Keys returns the registered scene keys in sorted order.
func (m *Manager) Keys() []string {
	keys := make([]string, 0, len(m.scenes))
	for k := range m.scenes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TransitionTo switches to the scene registered under key, exiting the
// current scene first. An unknown key logs a warning and leaves the
// current scene untouched.
func (m *Manager) TransitionTo(key string) {
	next, ok := m.scenes[key]
	if !ok {
		m.logger.Warn("unknown scene key, transition ignored", "key", key)
		return
	}
	if m.current != nil {
		m.current.Exit()
	}
	m.current = next
	next.Enter()
}

// Request schedules a transition to be applied at the start of the next
// Update. A later request in the same frame wins.
func (m *Manager) Request(key string) {
	m.pending = key
}

// applyPending performs a deferred transition, if one was requested.
func (m *Manager) applyPending() {
	if m.pending == "" {
		return
	}
	key := m.pending
	m.pending = ""
	m.TransitionTo(key)
}

// Update applies any pending transition, then runs one frame of the
// active scene.
func (m *Manager) Update(dt float64) {
	m.applyPending()
	if m.current != nil {
		m.current.Update(dt)
	}
}

// Render draws the active scene.
func (m *Manager) Render(screen *core.Screen) {
	if m.current != nil {
		m.current.Render(screen)
	}
}

// HandleInput forwards the input snapshot to the active scene.
func (m *Manager) HandleInput(in core.InputFrame) {
	if m.current != nil {
		m.current.HandleInput(in)
	}
}

// Destroy exits the active scene and destroys every registered scene.
func (m *Manager) Destroy() {
	if m.current != nil {
		m.current.Exit()
		m.current = nil
	}
	for _, s := range m.scenes {
		s.Destroy()
	}
	m.scenes = make(map[string]*Scene)
	m.pending = ""
}
