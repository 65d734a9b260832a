// internal/state/game_state.go
package state

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-artillery/internal/app"
	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/event"
	"go-artillery/internal/input"
	"go-artillery/internal/interfaces"
	"go-artillery/internal/physics/b2"
	"go-artillery/internal/ui"
	"go-artillery/pkg/render"
)

// Options carry what every new match is built from.
type Options struct {
	Settings    config.Settings
	Left, Right *defs.FortLayout
	Logger      *slog.Logger
}

// keyMap translates ebiten keys into match keys.
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyP:          input.KeyP,
	ebiten.KeyN:          input.KeyN,
	ebiten.KeyQ:          input.KeyQ,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
}

// GameState — состояние игры: одна партия, её отрисовка и ввод.
type GameState struct {
	sm       *StateMachine
	opts     Options
	match    *app.Match
	renderer *render.WorldRenderer
	hud      *ui.HUD
	buttons  [2]*ui.Button // new match, menu
	log      *slog.Logger

	lastClickTime time.Time
	lastCursor    input.Point
	startMonkeys  [2]int
	restart, quit bool
}

func NewGameState(sm *StateMachine, opts Options) (*GameState, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	dispatcher := event.NewDispatcher()
	match, err := app.NewMatch(opts.Settings, b2.New(opts.Settings.Gravity), app.Deps{
		Left:       opts.Left,
		Right:      opts.Right,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}

	colors := render.BodyColors{
		Background: config.BackgroundColor,
		Ground:     config.GroundColor,
		Wall:       config.WallColor,
		Wood:       config.WoodColor,
		Rock:       config.RockColor,
		Enemy:      config.EnemyColor,
		Weapon:     config.WeaponColor,
		Projectile: config.ProjectileColor,
		Banana:     config.BananaColor,
		AimLine:    config.AimLineColor,
		TierShade:  config.TierShadeFactors,
	}

	gs := &GameState{
		sm:       sm,
		opts:     opts,
		match:    match,
		renderer: render.NewWorldRenderer(colors, opts.Settings.ScalingFactor),
		hud:      ui.NewHUD(),
		buttons: [2]*ui.Button{
			ui.NewButton(config.ScreenWidth/2-130, config.ScreenHeight/2+50, 120, 32, "New match"),
			ui.NewButton(config.ScreenWidth/2+10, config.ScreenHeight/2+50, 120, 32, "Menu"),
		},
		log: logger,
	}
	for p, f := range match.LevelSystem.Forts {
		if f != nil {
			gs.startMonkeys[p] = f.EnemiesRemaining(match.ECS)
		}
	}
	dispatcher.Subscribe(event.RestartRequested, gs)
	dispatcher.Subscribe(event.QuitRequested, gs)
	return gs, nil
}

// OnEvent реализует интерфейс event.Listener.
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.RestartRequested:
		g.restart = true
	case event.QuitRequested:
		g.quit = true
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.Swap(NewPauseState(g.sm, g))
		return nil
	}

	g.pollInput(g.match)
	if err := g.match.Update(deltaTime); err != nil {
		return err
	}

	switch {
	case g.restart:
		next, err := NewGameState(g.sm, g.opts)
		if err != nil {
			return err
		}
		g.sm.SetState(next)
	case g.quit:
		g.sm.SetState(NewMenuState(g.sm, g.opts))
	}
	return nil
}

// pollInput forwards this frame's device events to the match.
func (g *GameState) pollInput(h interfaces.InputHandler) {
	for ek, k := range keyMap {
		if inpututil.IsKeyJustPressed(ek) {
			h.OnKey(k, true)
		}
		if inpututil.IsKeyJustReleased(ek) {
			h.OnKey(k, false)
		}
	}

	x, y := ebiten.CursorPosition()
	p := input.Point{X: float64(x), Y: float64(y)}
	if p != g.lastCursor {
		h.OnPointerMove(p)
		g.lastCursor = p
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.match.CurrentState().Phase == component.PhaseDone {
			g.handleDoneClick(x, y, h)
			return
		}
		h.OnPointerDown(p)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		h.OnPointerUp(p)
	}
}

func (g *GameState) handleDoneClick(x, y int, h interfaces.InputHandler) {
	if time.Since(g.lastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()
	switch {
	case g.buttons[0].Contains(x, y):
		h.OnKey(input.KeyN, true)
		h.OnKey(input.KeyN, false)
	case g.buttons[1].Contains(x, y):
		h.OnKey(input.KeyQ, true)
		h.OnKey(input.KeyQ, false)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	m := g.match
	g.renderer.Draw(screen, m.ECS, m.CameraSystem.Position)

	if m.Launcher.Aiming() {
		if pivot, ok := m.Launcher.Pivot(); ok {
			g.renderer.DrawAim(screen, pivot.X, pivot.Y, g.lastCursor.X, g.lastCursor.Y)
		}
	}

	g.hud.Draw(screen, g.status())
	if m.CurrentState().Phase == component.PhaseDone {
		for _, b := range g.buttons {
			b.Draw(screen)
		}
	}
}

func (g *GameState) status() ui.Status {
	m := g.match
	snap := m.CurrentState()
	s := ui.Status{
		Phase:        snap.Phase,
		ActivePlayer: snap.ActivePlayer,
		Winner:       -1,
	}
	if _, w := m.Launcher.Current(); w != nil {
		s.Ammo = w.Ammo.String()
		s.AngleDeg = -w.Angle * 180 / math.Pi
		if w.Facing == component.FacingLeft {
			s.AngleDeg = -s.AngleDeg
		}
	}
	for p := 0; p < 2; p++ {
		s.Scores[p] = *m.ECS.Scores[p]
		if f := m.LevelSystem.Forts[p]; f != nil {
			s.Remaining[p] = f.EnemiesRemaining(m.ECS)
		}
	}
	s.Total = g.startMonkeys
	if winner, ok := m.Winner(); ok {
		s.Winner = winner
	}
	return s
}

func (g *GameState) Exit() {
	g.match.Close()
}
