package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
)

// Status is everything the HUD shows for one frame.
type Status struct {
	Phase        component.Phase
	ActivePlayer int
	Ammo         string
	AngleDeg     float64
	Scores       [2]component.PlayerScore
	Remaining    [2]int
	Total        [2]int
	Winner       int // -1 while nobody has won
}

// HUD собирает индикаторы поверх мира.
type HUD struct {
	phase   *PhaseIndicator
	monkeys [2]*MonkeyIndicator
}

func NewHUD() *HUD {
	return &HUD{
		phase: NewPhaseIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		monkeys: [2]*MonkeyIndicator{
			NewMonkeyIndicator(10, 28, false),
			NewMonkeyIndicator(float32(config.ScreenWidth-10), 28, true),
		},
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	for p := 0; p < 2; p++ {
		h.monkeys[p].Draw(screen, s.Remaining[p], s.Total[p])
	}
	DrawText(screen, fmt.Sprintf("P1 %d", s.Scores[0].Points), 10, 8, config.TextDarkColor)
	DrawCentered(screen, fmt.Sprintf("P2 %d", s.Scores[1].Points), float64(config.ScreenWidth-60), 8, config.TextDarkColor)

	h.phase.Draw(screen, s.Phase)

	if s.Phase == component.PhaseWaiting || s.Phase == component.PhaseAttacking {
		line := fmt.Sprintf("Player %d  %s  %.0f°", s.ActivePlayer+1, s.Ammo, s.AngleDeg)
		DrawCentered(screen, line, config.ScreenWidth/2, 8, config.TextDarkColor)
	}

	if s.Phase == component.PhaseDone && s.Winner >= 0 {
		vector.DrawFilledRect(screen, 0, config.ScreenHeight/2-40, config.ScreenWidth, 80, config.OverlayColor, false)
		DrawCentered(screen, fmt.Sprintf("Player %d wins!", s.Winner+1), config.ScreenWidth/2, config.ScreenHeight/2-20, config.TextLightColor)
		DrawCentered(screen, "N - new match    Q - menu", config.ScreenWidth/2, config.ScreenHeight/2+5, config.TextLightColor)
	}
}
