// internal/state/menu_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-artillery/internal/config"
	"go-artillery/internal/ui"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm    *StateMachine
	opts  Options
	start *ui.Button
	quit  *ui.Button

	enteredAt time.Time
}

func NewMenuState(sm *StateMachine, opts Options) *MenuState {
	return &MenuState{
		sm:    sm,
		opts:  opts,
		start: ui.NewButton(config.ScreenWidth/2-70, config.ScreenHeight/2, 140, 36, "Start"),
		quit:  ui.NewButton(config.ScreenWidth/2-70, config.ScreenHeight/2+50, 140, 36, "Quit"),
	}
}

func (m *MenuState) Enter() {
	m.enteredAt = time.Now()
}

func (m *MenuState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	// клик, закрывший прошлую партию, не должен сразу начать новую
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		time.Since(m.enteredAt) > time.Duration(config.ClickCooldown)*time.Millisecond {
		x, y := ebiten.CursorPosition()
		switch {
		case m.start.Contains(x, y):
			start = true
		case m.quit.Contains(x, y):
			return ebiten.Termination
		}
	}
	if !start {
		return nil
	}

	game, err := NewGameState(m.sm, m.opts)
	if err != nil {
		return err
	}
	m.sm.SetState(game)
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "ARTILLERY", config.ScreenWidth/2, config.ScreenHeight/2-80, config.TextDarkColor)
	ui.DrawCentered(screen, "Drag from your cannon to aim, release to fire. W switches ammo.",
		config.ScreenWidth/2, config.ScreenHeight/2-50, config.TextDarkColor)
	m.start.Draw(screen)
	m.quit.Draw(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
