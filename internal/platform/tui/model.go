package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/dmgolubev/starblitz/internal/config"
	"github.com/dmgolubev/starblitz/internal/core"
	"github.com/dmgolubev/starblitz/internal/engine"
	"github.com/dmgolubev/starblitz/internal/game"
	"github.com/dmgolubev/starblitz/internal/storage"
)

// snapshotSlot is the storage slot used for the quick save.
const snapshotSlot = "quick"

// sessionSystem feeds the frame's input into the game and advances it by
// one step. Registered on the engine so the engine's clock drives the
// whole session.
type sessionSystem struct {
	game  *game.Game
	input core.InputFrame
}

func (s *sessionSystem) Name() string { return "session" }

func (s *sessionSystem) Update(entities []*engine.Entity, dt float64) {
	s.game.HandleInput(s.input)
	s.game.Update(dt)
	s.input.Clear()
}

// Model is the Bubble Tea model running a session.
type Model struct {
	logger   *log.Logger
	cfg      config.Shooter
	eng      *engine.Engine
	game     *game.Game
	session  *sessionSystem
	screen   *core.Screen
	store    *storage.Store
	keys     *KeyMapper
	quitting bool
}

// NewModel creates a new Bubble Tea model for a session.
func NewModel(logger *log.Logger, store *storage.Store, cfg config.Shooter) Model {
	if logger == nil {
		logger = log.Default()
	}
	// Use time-based seed if not specified
	if cfg.Gameplay.Seed == 0 {
		cfg.Gameplay.Seed = time.Now().UnixNano()
	}

	g := game.New(logger, cfg)
	if store != nil {
		g.SaveScore = func(score, level int) {
			//nolint:errcheck // Best-effort save, game continues regardless
			store.SaveScore(score, level)
		}
	}

	session := &sessionSystem{
		game:  g,
		input: core.NewInputFrame(),
	}

	eng := engine.New(logger)
	eng.AddSystem(session)

	return Model{
		logger:  logger,
		cfg:     cfg,
		eng:     eng,
		game:    g,
		session: session,
		screen:  core.NewScreen(cfg.Screen.Width, cfg.Screen.Height),
		store:   store,
		keys:    NewKeyMapper(),
	}
}

// Init starts the engine and the tick loop.
func (m Model) Init() tea.Cmd {
	m.eng.Start()
	return tickCmd(m.cfg.Engine.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.eng.Stop()
		m.game.Destroy()
		return m, tea.Quit
	}

	switch action {
	case core.ActionSave:
		m.saveSnapshot()
	case core.ActionLoad:
		m.loadSnapshot()
	case core.ActionNone:
	default:
		m.session.input.Set(action)
	}

	return m, nil
}

// handleTick advances the engine clock by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.eng.Tick(now)
	return m, tickCmd(m.cfg.Engine.TickRate)
}

// saveSnapshot persists the session to the quick slot.
func (m *Model) saveSnapshot() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveSnapshot(snapshotSlot, m.game.Serialize()); err != nil {
		m.logger.Warn("snapshot save failed", "err", err)
	}
}

// loadSnapshot restores the session from the quick slot, if present.
func (m *Model) loadSnapshot() {
	if m.store == nil {
		return
	}
	raw, ok, err := m.store.LoadSnapshot(snapshotSlot)
	if err != nil {
		m.logger.Warn("snapshot load failed", "err", err)
		return
	}
	if !ok {
		return
	}
	if !m.game.Deserialize(raw) {
		m.logger.Warn("snapshot rejected, keeping current session")
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(logger *log.Logger, store *storage.Store, cfg config.Shooter) error {
	model := NewModel(logger, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
