// Package game implements the Starblitz shooter on top of the engine and
// scene runtimes: session state, gameplay components and systems, and the
// four scenes the session cycles through.
package game

import (
	"encoding/json"

	"github.com/charmbracelet/log"
)

// SceneKey identifies a registered scene.
type SceneKey = string

const (
	SceneMenu     SceneKey = "menu"
	SceneGameplay SceneKey = "gameplay"
	ScenePaused   SceneKey = "paused"
	SceneGameOver SceneKey = "game_over"
)

// Difficulty caps. Difficulty is derived from the level, never stored.
const (
	maxDifficulty = 10
	maxWeaponTier = 3
)

const (
	startLives    = 3
	startMissiles = 5
	startSpecials = 1
)

// Ammunition capacity. Grants past the cap are rejected, not clipped.
const (
	maxMissiles    = 99
	maxSpecialUses = 9
)

// WeaponUpgrades holds the per-weapon upgrade tier.
type WeaponUpgrades struct {
	Beam    int `json:"beam"`
	Missile int `json:"missile"`
	Special int `json:"special"`
}

// Ammunition holds the consumable counters.
type Ammunition struct {
	Missiles    int `json:"missiles"`
	SpecialUses int `json:"specialUses"`
}

// AmmoKind selects an ammunition counter.
type AmmoKind string

const (
	AmmoMissile AmmoKind = "missile"
	AmmoSpecial AmmoKind = "special"
)

// WeaponKind selects a weapon upgrade slot.
type WeaponKind string

const (
	WeaponBeam    WeaponKind = "beam"
	WeaponMissile WeaponKind = "missile"
	WeaponSpecial WeaponKind = "special"
)

// Progress is the serializable part of the session.
type Progress struct {
	Score      int            `json:"score"`
	Lives      int            `json:"lives"`
	Level      int            `json:"level"`
	Weapons    WeaponUpgrades `json:"weaponUpgrades"`
	Ammunition Ammunition     `json:"ammunition"`
}

// Callbacks is the observer set the UI and scene layer hang off the state.
// Every field is optional.
type Callbacks struct {
	OnScoreChange func(score int)
	OnLivesChange func(lives int)
	OnLevelChange func(level int)
	OnSceneChange func(current, previous SceneKey)
	OnGameOver    func()
	OnRestart     func()
}

// State is the single session-scoped value object driving the shooter. It
// is the sole source of truth for the active scene; the scene manager
// mirrors its transition notifications through OnSceneChange.
type State struct {
	logger *log.Logger

	progress      Progress
	currentScene  SceneKey
	previousScene SceneKey

	callbacks Callbacks
}

// NewState creates a session starting at the menu with default resources.
func NewState(logger *log.Logger) *State {
	if logger == nil {
		logger = log.Default()
	}
	s := &State{logger: logger}
	s.reset()
	return s
}

func (s *State) reset() {
	s.progress = Progress{
		Lives: startLives,
		Level: 1,
		Ammunition: Ammunition{
			Missiles:    startMissiles,
			SpecialUses: startSpecials,
		},
	}
	s.currentScene = SceneMenu
	s.previousScene = ""
}

// Restart resets the session to its initial resources and notifies the
// restart observer. The scene is left where it is; the caller decides
// where a fresh run begins.
func (s *State) Restart() {
	current, previous := s.currentScene, s.previousScene
	s.reset()
	s.currentScene, s.previousScene = current, previous
	if s.callbacks.OnRestart != nil {
		s.callbacks.OnRestart()
	}
}

// SetCallbacks merges the non-nil fields of cb into the observer set.
// Already-registered observers survive a partial update.
func (s *State) SetCallbacks(cb Callbacks) {
	if cb.OnScoreChange != nil {
		s.callbacks.OnScoreChange = cb.OnScoreChange
	}
	if cb.OnLivesChange != nil {
		s.callbacks.OnLivesChange = cb.OnLivesChange
	}
	if cb.OnLevelChange != nil {
		s.callbacks.OnLevelChange = cb.OnLevelChange
	}
	if cb.OnSceneChange != nil {
		s.callbacks.OnSceneChange = cb.OnSceneChange
	}
	if cb.OnGameOver != nil {
		s.callbacks.OnGameOver = cb.OnGameOver
	}
	if cb.OnRestart != nil {
		s.callbacks.OnRestart = cb.OnRestart
	}
}

// CurrentScene returns the active scene key.
func (s *State) CurrentScene() SceneKey { return s.currentScene }

// PreviousScene returns the key active before the last transition.
func (s *State) PreviousScene() SceneKey { return s.previousScene }

// TransitionToScene records a scene change and notifies the observer.
// The actual scene swap is the manager's job; it subscribes via
// OnSceneChange and applies the switch at the next frame boundary.
func (s *State) TransitionToScene(key SceneKey) {
	if key == s.currentScene {
		return
	}
	s.previousScene = s.currentScene
	s.currentScene = key
	if s.callbacks.OnSceneChange != nil {
		s.callbacks.OnSceneChange(s.currentScene, s.previousScene)
	}
}

// Score returns the session score.
func (s *State) Score() int { return s.progress.Score }

// AddScore adds points and notifies the score observer.
func (s *State) AddScore(points int) {
	if points == 0 {
		return
	}
	s.progress.Score += points
	if s.callbacks.OnScoreChange != nil {
		s.callbacks.OnScoreChange(s.progress.Score)
	}
}

// Lives returns the remaining lives.
func (s *State) Lives() int { return s.progress.Lives }

// SetLives sets the life counter directly and notifies the observer.
func (s *State) SetLives(lives int) {
	if lives < 0 {
		lives = 0
	}
	if lives == s.progress.Lives {
		return
	}
	s.progress.Lives = lives
	if s.callbacks.OnLivesChange != nil {
		s.callbacks.OnLivesChange(s.progress.Lives)
	}
}

// LoseLife decrements the life counter. When the last life is spent it
// transitions to the game-over scene, fires the game-over observer, and
// reports true.
func (s *State) LoseLife() bool {
	s.SetLives(s.progress.Lives - 1)
	if s.progress.Lives > 0 {
		return false
	}
	s.TransitionToScene(SceneGameOver)
	if s.callbacks.OnGameOver != nil {
		s.callbacks.OnGameOver()
	}
	return true
}

// Level returns the current level, starting at 1.
func (s *State) Level() int { return s.progress.Level }

// NextLevel advances the level and notifies the observer.
func (s *State) NextLevel() {
	s.progress.Level++
	if s.callbacks.OnLevelChange != nil {
		s.callbacks.OnLevelChange(s.progress.Level)
	}
}

// Difficulty derives the difficulty from the level, capped.
func (s *State) Difficulty() int {
	if s.progress.Level > maxDifficulty {
		return maxDifficulty
	}
	return s.progress.Level
}

// Weapons returns the current upgrade tiers.
func (s *State) Weapons() WeaponUpgrades { return s.progress.Weapons }

// UpgradeWeapon raises the given weapon's tier, capped at maxWeaponTier.
func (s *State) UpgradeWeapon(kind WeaponKind) {
	tier := func(cur int) int {
		if cur >= maxWeaponTier {
			return cur
		}
		return cur + 1
	}
	switch kind {
	case WeaponBeam:
		s.progress.Weapons.Beam = tier(s.progress.Weapons.Beam)
	case WeaponMissile:
		s.progress.Weapons.Missile = tier(s.progress.Weapons.Missile)
	case WeaponSpecial:
		s.progress.Weapons.Special = tier(s.progress.Weapons.Special)
	default:
		s.logger.Warn("unknown weapon kind, upgrade ignored", "kind", kind)
	}
}

// Ammo returns the current ammunition counters.
func (s *State) Ammo() Ammunition { return s.progress.Ammunition }

// UseAmmunition spends amount units of the given kind. It reports false
// and spends nothing when the counter is too low or the amount is
// negative. Spending zero units trivially succeeds.
func (s *State) UseAmmunition(kind AmmoKind, amount int) bool {
	if amount < 0 {
		s.logger.Warn("negative ammo spend rejected", "kind", kind, "amount", amount)
		return false
	}
	if amount == 0 {
		return true
	}
	switch kind {
	case AmmoMissile:
		if s.progress.Ammunition.Missiles < amount {
			return false
		}
		s.progress.Ammunition.Missiles -= amount
	case AmmoSpecial:
		if s.progress.Ammunition.SpecialUses < amount {
			return false
		}
		s.progress.Ammunition.SpecialUses -= amount
	default:
		s.logger.Warn("unknown ammo kind, spend ignored", "kind", kind)
		return false
	}
	return true
}

// AddAmmo grants missiles. It reports false and grants nothing when the
// amount is not positive or the grant would push past capacity.
func (s *State) AddAmmo(amount int) bool {
	if amount <= 0 || s.progress.Ammunition.Missiles+amount > maxMissiles {
		return false
	}
	s.progress.Ammunition.Missiles += amount
	return true
}

// AddSpecialUses grants special-weapon charges under the same capacity
// rule as AddAmmo.
func (s *State) AddSpecialUses(amount int) bool {
	if amount <= 0 || s.progress.Ammunition.SpecialUses+amount > maxSpecialUses {
		return false
	}
	s.progress.Ammunition.SpecialUses += amount
	return true
}

// snapshot is the wire form of a serialized session. Pointer fields let
// Deserialize tell an absent key from a zero value.
type snapshot struct {
	Data          *Progress `json:"data"`
	CurrentScene  *SceneKey `json:"currentScene"`
	PreviousScene *SceneKey `json:"previousScene"`
}

// Serialize encodes the session as a JSON document.
func (s *State) Serialize() string {
	snap := snapshot{
		Data:          &s.progress,
		CurrentScene:  &s.currentScene,
		PreviousScene: &s.previousScene,
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		// Progress is plain data; this cannot fail in practice.
		s.logger.Error("state snapshot encode failed", "err", err)
		return ""
	}
	return string(raw)
}

// Deserialize restores the session from a Serialize document. Malformed
// or incomplete input leaves the state untouched and reports false. The
// scene observer is not notified; the caller re-syncs the scene manager.
func (s *State) Deserialize(raw string) bool {
	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.logger.Warn("state snapshot rejected", "err", err)
		return false
	}
	if snap.Data == nil || snap.CurrentScene == nil || snap.PreviousScene == nil {
		s.logger.Warn("state snapshot rejected", "err", "missing fields")
		return false
	}
	switch *snap.CurrentScene {
	case SceneMenu, SceneGameplay, ScenePaused, SceneGameOver:
	default:
		s.logger.Warn("state snapshot rejected", "scene", *snap.CurrentScene)
		return false
	}
	s.progress = *snap.Data
	s.currentScene = *snap.CurrentScene
	s.previousScene = *snap.PreviousScene
	return true
}
