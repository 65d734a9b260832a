// internal/app/match.go
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/input"
	"go-artillery/internal/physics"
	"go-artillery/internal/system"
	"go-artillery/internal/types"
	"go-artillery/internal/utils"
)

// ErrInvalidPhase is returned by Update when the match is in a phase it
// does not know. It means a bug, so the match must stop.
var ErrInvalidPhase = errors.New("invalid match phase")

// Deps are the collaborators a match can be given. Zero values pick the
// defaults: built-in forts, a fresh dispatcher, slog.Default().
type Deps struct {
	Left, Right *defs.FortLayout
	Dispatcher  *event.Dispatcher
	Logger      *slog.Logger
}

// Snapshot is the part of the match state the HUD shows.
type Snapshot struct {
	Phase        component.Phase
	ActivePlayer int
	StateTime    float64
}

// Match — одна партия: очередь ходов, полёт снаряда и проверка победы.
type Match struct {
	ID              string
	ECS             *entity.ECS
	Settings        config.Settings
	EventDispatcher *event.Dispatcher

	World              *system.WorldSystem
	ContactResolver    *system.ContactResolver
	Settler            *system.Settler
	Launcher           *system.Launcher
	ProjectileSystem   *system.ProjectileSystem
	CameraSystem       *system.CameraSystem
	LevelSystem        *system.LevelSystem
	ScoreSystem        *system.ScoreSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	Rng  *utils.PRNGService
	keys input.Keys
	log  *slog.Logger
	// fatal holds an error raised by an input handler until the next Update.
	fatal error
}

// NewMatch builds the world and both forts and picks who starts.
func NewMatch(settings config.Settings, engine physics.Engine, deps Deps) (*Match, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("match", id)
	dispatcher := deps.Dispatcher
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	ecs := entity.NewECS()
	m := &Match{
		ID:              id,
		ECS:             ecs,
		Settings:        settings,
		EventDispatcher: dispatcher,
		Rng:             utils.NewPRNGService(settings.Seed),
		keys:            input.Keys{},
		log:             logger,
	}
	m.World = system.NewWorldSystem(ecs, engine, settings, logger)
	m.ContactResolver = system.NewContactResolver(ecs, engine, dispatcher, settings.DamageFactor, logger)
	m.Settler = system.NewSettler(m.World, settings.SettlePolicy, settings.SettleThreshold)
	m.CameraSystem = system.NewCameraSystem(ecs, settings.LevelWidth, settings.LevelHeight,
		config.ScreenWidth, config.ScreenHeight, settings.CameraScrollSpeed)
	m.ProjectileSystem = system.NewProjectileSystem(ecs, m.World, logger)
	m.Launcher = system.NewLauncher(ecs, settings, m.CameraSystem, m.ProjectileSystem, dispatcher, logger)
	m.LevelSystem = system.NewLevelSystem(ecs, m.World, logger)
	m.ScoreSystem = system.NewScoreSystem(ecs, logger)
	m.StateSystem = system.NewStateSystem(ecs, dispatcher, logger)
	m.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	dispatcher.Subscribe(event.EntityDestroyed, m.ScoreSystem)

	if err := m.World.Init(); err != nil {
		return nil, fmt.Errorf("init world: %w", err)
	}

	groundY := settings.LevelHeight - settings.GroundHeight
	left, right := defs.DefaultFort(groundY), defs.DefaultFort(groundY)
	if deps.Left != nil {
		left = *deps.Left
	}
	if deps.Right != nil {
		right = *deps.Right
	}
	if err := m.LevelSystem.Build(left, right); err != nil {
		return nil, err
	}
	m.Launcher.SetWeapons(m.LevelSystem.Forts[0].Weapon, m.LevelSystem.Forts[1].Weapon)

	ecs.Match.ActivePlayer = m.Rng.Player()
	m.CameraSystem.Warp(m.sideX(ecs.Match.ActivePlayer), 0)

	m.log.Info("match started", "first_player", ecs.Match.ActivePlayer, "seed", m.Rng.Seed())
	return m, nil
}

// Update advances the match by dt seconds. The world, camera, level and
// launcher are updated every tick whatever the phase.
func (m *Match) Update(dt float64) error {
	if m.fatal != nil {
		return m.fatal
	}
	state := m.ECS.Match
	state.StateTime += dt

	// Contacts of this step are resolved before any phase decision.
	m.ContactResolver.Resolve(m.World.Step())
	m.LevelSystem.Prune(m.World.Sweep())

	switch state.Phase {
	case component.PhaseStarting:
		if state.StateTime >= config.StartDelay {
			m.StateSystem.SwitchTo(component.PhaseWaiting)
		}
	case component.PhaseWaiting:
		// the turn ends on pointer release, see OnPointerUp
	case component.PhaseAttacking:
		if reason, over := m.turnOver(); over {
			m.endTurn(reason)
		}
	case component.PhaseTransitioning:
		if !m.CameraSystem.Sliding() {
			m.StateSystem.SwitchTo(component.PhaseWaiting)
		}
	case component.PhaseDone:
	default:
		m.log.Error("invalid phase", "phase", int(state.Phase))
		return fmt.Errorf("%w: %d", ErrInvalidPhase, int(state.Phase))
	}

	m.CameraSystem.Update(dt, m.keys, m.Launcher.Aiming())
	m.LevelSystem.Update()
	m.Launcher.Update(state.Phase)
	m.VisualEffectSystem.Update(dt)
	return nil
}

func (m *Match) turnOver() (string, bool) {
	state := m.ECS.Match
	if state.StateTime > m.Settings.MaxTurnTime {
		return "timeout", true
	}
	if x, ok := m.ProjectileSystem.X(state.ActiveProjectile); ok {
		if x < 0 || x > m.Settings.LevelWidthMeters() {
			return "out_of_bounds", true
		}
	}
	if m.Settler.Settled() {
		return "settled", true
	}
	return "", false
}

func (m *Match) endTurn(reason string) {
	state := m.ECS.Match
	m.CameraSystem.StopFollowing()
	if state.ActiveProjectile != types.NoEntity {
		m.ProjectileSystem.Destroy(state.ActiveProjectile)
		state.ActiveProjectile = types.NoEntity
	}

	acting := state.ActivePlayer
	m.log.Info("turn ended", "player", acting, "reason", reason)
	m.EventDispatcher.Dispatch(event.Event{
		Type: event.TurnEnded,
		Data: event.TurnResult{Player: acting, Reason: reason},
	})

	if winner, ok := m.checkWin(acting); ok {
		state.Winner = winner
		m.StateSystem.SwitchTo(component.PhaseDone)
		m.log.Info("match won", "winner", winner)
		m.EventDispatcher.Dispatch(event.Event{
			Type: event.MatchWon,
			Data: event.Win{MatchID: m.ID, Winner: winner},
		})
		return
	}

	state.ActivePlayer = 1 - acting
	m.CameraSystem.SlideTo(m.sideX(state.ActivePlayer), 0, true, 0)
	m.StateSystem.SwitchTo(component.PhaseTransitioning)
}

// checkWin looks at the fort the acting player shot at first, then at
// its own fort, so a turn that finishes both forts goes to the shooter.
func (m *Match) checkWin(acting int) (int, bool) {
	forts := m.LevelSystem.Forts
	if forts[1-acting].Finished(m.ECS) {
		return acting, true
	}
	if forts[acting].Finished(m.ECS) {
		return 1 - acting, true
	}
	return 0, false
}

// sideX is the camera position that shows a player's fort.
func (m *Match) sideX(player int) float64 {
	if player == 1 {
		return m.CameraSystem.MaxBound.X
	}
	return 0
}

// CurrentState returns the phase, the active player and the state time.
func (m *Match) CurrentState() Snapshot {
	s := m.ECS.Match
	return Snapshot{Phase: s.Phase, ActivePlayer: s.ActivePlayer, StateTime: s.StateTime}
}

// Winner reports the winning player once the match is done.
func (m *Match) Winner() (int, bool) {
	if m.ECS.Match.Phase != component.PhaseDone || m.ECS.Match.Winner < 0 {
		return 0, false
	}
	return m.ECS.Match.Winner, true
}

func (m *Match) OnPointerDown(p input.Point) {
	if m.ECS.Match.Phase != component.PhaseWaiting || m.CameraSystem.Sliding() {
		return
	}
	m.Launcher.PrepareLaunch()
	m.Launcher.Aim(p)
}

func (m *Match) OnPointerMove(p input.Point) {
	m.Launcher.Aim(p)
}

// OnPointerUp fires the active weapon if the player was aiming.
func (m *Match) OnPointerUp(p input.Point) {
	if m.ECS.Match.Phase != component.PhaseWaiting || !m.Launcher.Aiming() {
		return
	}
	m.Launcher.Aim(p)
	id, fired, err := m.Launcher.Launch()
	if err != nil {
		m.fatal = err
		return
	}
	if !fired {
		return
	}
	m.ECS.Match.ActiveProjectile = id
	m.StateSystem.SwitchTo(component.PhaseAttacking)
}

// OnKey records held keys and handles the match shortcuts on press.
func (m *Match) OnKey(k input.Key, down bool) {
	m.keys[k] = down
	if !down {
		return
	}

	state := m.ECS.Match
	switch k {
	case input.KeyW:
		if state.Phase == component.PhaseWaiting {
			m.Launcher.ChangeWeapon()
		}
	case input.KeyEscape:
		m.Launcher.Abort()
	case input.KeyA:
		m.log.Info("settle state", "policy", m.Settler.Policy(), "settled", m.Settler.Settled())
	case input.KeyP:
		if x, ok := m.ProjectileSystem.X(state.ActiveProjectile); ok {
			m.log.Info("projectile", "x", x, "min", 0, "max", m.Settings.LevelWidthMeters())
		}
	case input.KeyEnter:
		// not while aiming: Follow is ignored during a slide
		if state.Phase == component.PhaseWaiting && m.CameraSystem.Mode() == component.CameraIdle && !m.Launcher.Aiming() {
			x := m.CameraSystem.MaxBound.X
			if m.CameraSystem.Position.X > x/2 {
				x = 0
			}
			m.CameraSystem.SlideTo(x, 0, true, 0)
		}
	case input.KeyN:
		if state.Phase == component.PhaseDone {
			m.EventDispatcher.Dispatch(event.Event{Type: event.RestartRequested, Data: m.ID})
		}
	case input.KeyQ:
		if state.Phase == component.PhaseDone {
			m.EventDispatcher.Dispatch(event.Event{Type: event.QuitRequested, Data: m.ID})
		}
	}
}

// Close destroys every body of the match.
func (m *Match) Close() {
	m.World.Clear()
	m.log.Info("match closed")
}
