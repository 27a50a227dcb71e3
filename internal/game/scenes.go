package game

import (
	"fmt"

	"github.com/dmgolubev/starblitz/internal/core"
	"github.com/dmgolubev/starblitz/internal/engine"
	"github.com/dmgolubev/starblitz/internal/scene"
)

// colliderOutline is one collider rectangle recorded by the debug pass.
type colliderOutline struct {
	rect    core.RectF
	trigger bool
}

// outlineRecorder buffers debug rectangles during the collision pass so
// they can be stroked later, when the frame is actually rendered.
type outlineRecorder struct {
	outlines []colliderOutline
}

func (r *outlineRecorder) StrokeCollider(rect core.RectF, trigger bool) {
	r.outlines = append(r.outlines, colliderOutline{rect: rect, trigger: trigger})
}

func (r *outlineRecorder) drain(screen *core.Screen) {
	for _, o := range r.outlines {
		stroke, color := '#', core.ColorBlue
		if o.trigger {
			stroke, color = ':', core.ColorGreen
		}
		screen.StrokeRect(core.CellRect(o.rect), stroke, color)
	}
	r.outlines = r.outlines[:0]
}

// buildMenuScene builds the title screen.
func (g *Game) buildMenuScene() *scene.Scene {
	s := scene.New(SceneMenu)
	s.RenderFunc = func(screen *core.Screen) {
		cy := screen.Height() / 2
		screen.DrawTextCenteredColored(cy-2, "S T A R B L I T Z", core.ColorCyan)
		screen.DrawTextCentered(cy, "enter - start run")
		screen.DrawTextCentered(cy+1, "F9 - load snapshot")
		screen.DrawTextCentered(cy+2, "q - quit")
	}
	s.HandleInputFunc = func(in core.InputFrame) {
		if in.Has(core.ActionConfirm) {
			g.state.Restart()
			g.state.TransitionToScene(SceneGameplay)
		}
	}
	return s
}

// buildGameplayScene builds the run itself: the player, the spawner, and
// all collision wiring. The pool is rebuilt from scratch on every entry.
func (g *Game) buildGameplayScene() *scene.Scene {
	s := scene.New(SceneGameplay)

	var player *engine.Entity
	var kills int
	recorder := &outlineRecorder{}

	s.OnEnter = func() {
		player = g.newPlayer(core.Vec2{
			X: g.world.Width / 2,
			Y: g.world.Height - 2,
		})
		g.wirePlayer(player)
		s.AddEntity(player)

		spawner := NewSpawnSystem(g.world, g.cfg.Gameplay.SpawnRate, g.cfg.Gameplay.Seed)
		spawner.DifficultyFunc = g.state.Difficulty
		spawner.Spawn = func(pos core.Vec2, speed float64) {
			enemy := g.newEnemy(pos, speed)
			g.wireEnemy(enemy, s, &kills)
			s.AddEntity(enemy)
		}

		g.collision = engine.NewCollisionSystem()
		g.collision.AttachDrawer(recorder)
		g.collision.SetDebug(g.cfg.Debug)

		s.AddSystem(spawner)
		s.AddSystem(&LifetimeSystem{})
		s.AddSystem(&BoundsSystem{World: g.world, Padding: 2})
		s.AddSystem(g.collision)

		g.render = &RenderSystem{}
	}

	s.OnExit = func() {
		if g.collision != nil {
			g.collision.ClearState()
		}
		player = nil
		kills = 0
	}

	s.UpdateFunc = func(dt float64) {
		if player == nil || !player.Active {
			return
		}
		// Keep the ship inside the world and advance levels on score.
		t := engine.TransformOf(player)
		t.Position.X = core.ClampF(t.Position.X, 1, g.world.Width-2)
		t.Position.Y = core.ClampF(t.Position.Y, 1, g.world.Height-2)
		if g.state.Score() >= g.state.Level()*g.cfg.Gameplay.LevelScore {
			g.state.NextLevel()
		}
	}

	s.HandleInputFunc = func(in core.InputFrame) {
		if in.Has(core.ActionPause) {
			g.state.TransitionToScene(ScenePaused)
			return
		}
		if player == nil || !player.Active {
			return
		}
		t := engine.TransformOf(player)
		speed := g.cfg.Gameplay.PlayerSpeed
		t.Velocity = core.Vec2{}
		if in.Has(core.ActionLeft) {
			t.Velocity.X = -speed
		}
		if in.Has(core.ActionRight) {
			t.Velocity.X = speed
		}
		if in.Has(core.ActionUp) {
			t.Velocity.Y = -speed / 2
		}
		if in.Has(core.ActionDown) {
			t.Velocity.Y = speed / 2
		}

		muzzle := core.Vec2{X: t.Position.X, Y: t.Position.Y - 1}
		if in.Has(core.ActionFire) {
			if w, ok := player.GetComponent(WeaponType).(*Weapon); ok && w.Fire() {
				s.AddEntity(g.newPlayerShot(muzzle))
			}
		}
		if in.Has(core.ActionMissile) && g.state.UseAmmunition(AmmoMissile, 1) {
			s.AddEntity(g.newMissile(muzzle))
		}
		if in.Has(core.ActionSpecial) && g.state.UseAmmunition(AmmoSpecial, 1) {
			// The special clears the field. Every live enemy scores.
			for _, e := range s.Entities() {
				if e.Active && e.HasComponent(ScoreType) {
					if sc, ok := e.GetComponent(ScoreType).(*Score); ok {
						g.state.AddScore(sc.Points)
					}
					e.Destroy()
				}
			}
		}
	}

	s.RenderFunc = func(screen *core.Screen) {
		g.render.Screen = screen
		g.render.Update(engine.FilterEntities(s.Entities(), g.render), 0)
		g.render.Screen = nil
		recorder.drain(screen)
		g.drawHUD(screen)
	}

	return s
}

// wirePlayer attaches the player's collision handlers. Solid contact with
// an enemy costs a life and removes the enemy; pickups are handled on the
// pickup's own collider so the effect applies exactly once.
func (g *Game) wirePlayer(player *engine.Entity) {
	c := engine.ColliderOf(player)
	c.SetCollisionCallback(func(ev engine.CollisionEvent) {
		if ev.OtherCollider.Layer&(LayerEnemy|LayerEnemyShot) == 0 {
			return
		}
		g.state.LoseLife()
	})
}

// wireEnemy attaches the enemy's collision handlers. Shots are triggers,
// so damage lands through the enemy's side of the trigger contact.
func (g *Game) wireEnemy(enemy *engine.Entity, s *scene.Scene, kills *int) {
	c := engine.ColliderOf(enemy)
	c.SetTriggerEnterCallback(func(ev engine.CollisionEvent) {
		if ev.OtherCollider.Layer&LayerPlayerShot == 0 {
			return
		}
		s.RemoveEntity(ev.OtherID)
		h, ok := enemy.GetComponent(HealthType).(*Health)
		if ok && h.Damage(1) {
			return
		}
		if sc, ok := enemy.GetComponent(ScoreType).(*Score); ok {
			g.state.AddScore(sc.Points)
		}
		enemy.Destroy()
		*kills++
		if *kills%g.cfg.Gameplay.PickupEvery == 0 {
			t := engine.TransformOf(enemy)
			pickup := g.newPickup(t.Position, pickupKindFor(*kills))
			g.wirePickup(pickup, s)
			s.AddEntity(pickup)
		}
	})
	c.SetCollisionCallback(func(ev engine.CollisionEvent) {
		// Solid contact with the player; the player side loses the life,
		// this side removes the rock.
		if ev.OtherCollider.Layer&LayerPlayer != 0 {
			enemy.Destroy()
		}
	})
}

// wirePickup applies the pickup's effect when the player touches it.
func (g *Game) wirePickup(pickup *engine.Entity, s *scene.Scene) {
	c := engine.ColliderOf(pickup)
	kind := PickupLife
	if p, ok := pickup.GetComponent(PickupType).(*Pickup); ok {
		kind = p.Kind
	}
	c.SetTriggerEnterCallback(func(ev engine.CollisionEvent) {
		if ev.OtherCollider.Layer&LayerPlayer == 0 {
			return
		}
		switch kind {
		case PickupWeapon:
			g.state.UpgradeWeapon(WeaponBeam)
			if player := s.Entity("player"); player != nil {
				if w, ok := player.GetComponent(WeaponType).(*Weapon); ok {
					w.Cooldown = g.fireCooldown()
				}
			}
		case PickupMissile:
			if !g.state.AddAmmo(3) {
				// Racks are full; convert the pickup to points instead.
				g.state.AddScore(25)
			}
		case PickupSpecial:
			if !g.state.AddSpecialUses(1) {
				g.state.AddScore(25)
			}
		case PickupLife:
			g.state.SetLives(g.state.Lives() + 1)
		}
		pickup.Destroy()
	})
}

// pickupKindFor cycles the drop table.
func pickupKindFor(kills int) PickupKind {
	switch (kills / 7) % 4 {
	case 0:
		return PickupWeapon
	case 1:
		return PickupMissile
	case 2:
		return PickupSpecial
	default:
		return PickupLife
	}
}

// buildPausedScene builds the pause overlay. Resuming re-enters gameplay,
// which rebuilds the field from scratch; the session score, lives, and
// level carry over through the state.
func (g *Game) buildPausedScene() *scene.Scene {
	s := scene.New(ScenePaused)
	s.RenderFunc = func(screen *core.Screen) {
		cy := screen.Height() / 2
		screen.DrawTextCenteredColored(cy-1, "P A U S E D", core.ColorYellow)
		screen.DrawTextCentered(cy+1, "p - resume    F5 - save    esc - menu")
		g.drawHUD(screen)
	}
	s.HandleInputFunc = func(in core.InputFrame) {
		switch {
		case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
			g.state.TransitionToScene(SceneGameplay)
		case in.Has(core.ActionBack):
			g.state.TransitionToScene(SceneMenu)
		}
	}
	return s
}

// buildGameOverScene builds the end screen.
func (g *Game) buildGameOverScene() *scene.Scene {
	s := scene.New(SceneGameOver)
	s.RenderFunc = func(screen *core.Screen) {
		cy := screen.Height() / 2
		screen.DrawTextCenteredColored(cy-2, "G A M E   O V E R", core.ColorRed)
		screen.DrawTextCentered(cy, fmt.Sprintf("score %d    level %d", g.state.Score(), g.state.Level()))
		screen.DrawTextCentered(cy+2, "r - restart    esc - menu")
	}
	s.HandleInputFunc = func(in core.InputFrame) {
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.state.Restart()
			g.state.TransitionToScene(SceneGameplay)
		case in.Has(core.ActionBack):
			g.state.TransitionToScene(SceneMenu)
		}
	}
	return s
}

// drawHUD renders the status line shared by gameplay and pause.
func (g *Game) drawHUD(screen *core.Screen) {
	hud := fmt.Sprintf("score %d  lives %d  level %d  missiles %d  specials %d",
		g.state.Score(), g.state.Lives(), g.state.Level(),
		g.state.Ammo().Missiles, g.state.Ammo().SpecialUses)
	screen.DrawTextColored(1, 0, hud, core.ColorWhite)
}
