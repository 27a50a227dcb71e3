package game

import (
	"github.com/charmbracelet/log"

	"github.com/dmgolubev/starblitz/internal/config"
	"github.com/dmgolubev/starblitz/internal/core"
	"github.com/dmgolubev/starblitz/internal/engine"
	"github.com/dmgolubev/starblitz/internal/scene"
)

// Game wires the session state, the scene manager, and the four scenes
// into one frame-driven unit. The platform layer drives it through
// Update/Render/HandleInput once per tick.
type Game struct {
	logger *log.Logger
	cfg    config.Shooter

	state  *State
	scenes *scene.Manager

	world     core.RectF
	collision *engine.CollisionSystem
	render    *RenderSystem

	idSeq    uint64
	finished bool
	// score already persisted for the current run
	scoreSaved bool
	// SaveScore persists a finished run's score. Wired by the platform
	// layer; nil means scores are not recorded.
	SaveScore func(score, level int)
}

// New builds a game session from the given config.
func New(logger *log.Logger, cfg config.Shooter) *Game {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		logger: logger,
		cfg:    cfg,
		state:  NewState(logger),
		scenes: scene.NewManager(logger),
		world: core.RectF{
			Width:  float64(cfg.Screen.Width),
			Height: float64(cfg.Screen.Height),
		},
	}

	g.state.SetCallbacks(Callbacks{
		OnSceneChange: func(current, previous SceneKey) {
			g.scenes.Request(current)
		},
		OnGameOver: func() {
			g.finished = true
		},
		OnRestart: func() {
			g.finished = false
			g.scoreSaved = false
		},
	})

	g.scenes.Register(SceneMenu, g.buildMenuScene())
	g.scenes.Register(SceneGameplay, g.buildGameplayScene())
	g.scenes.Register(ScenePaused, g.buildPausedScene())
	g.scenes.Register(SceneGameOver, g.buildGameOverScene())
	g.scenes.TransitionTo(SceneMenu)

	return g
}

// State exposes the session state to the platform layer.
func (g *Game) State() *State { return g.state }

// Finished reports whether the current run has ended.
func (g *Game) Finished() bool { return g.finished }

// SetDebug toggles collision rectangle rendering.
func (g *Game) SetDebug(debug bool) {
	if g.collision != nil {
		g.collision.SetDebug(debug)
	}
}

// Update advances the session by one frame.
func (g *Game) Update(dt float64) {
	g.scenes.Update(dt)
	if g.finished && !g.scoreSaved {
		g.scoreSaved = true
		if g.SaveScore != nil {
			g.SaveScore(g.state.Score(), g.state.Level())
		}
	}
}

// Render draws the active scene into the screen buffer.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()
	g.scenes.Render(screen)
}

// HandleInput forwards this frame's input snapshot to the active scene.
func (g *Game) HandleInput(in core.InputFrame) {
	g.scenes.HandleInput(in)
}

// Destroy tears the session down.
func (g *Game) Destroy() {
	g.scenes.Destroy()
}

// Serialize snapshots the session as JSON.
func (g *Game) Serialize() string { return g.state.Serialize() }

// Deserialize restores a snapshot and re-syncs the scene manager to the
// restored scene. It reports false and changes nothing on bad input.
func (g *Game) Deserialize(raw string) bool {
	if !g.state.Deserialize(raw) {
		return false
	}
	g.finished = g.state.CurrentScene() == SceneGameOver
	g.scenes.Request(g.state.CurrentScene())
	return true
}
