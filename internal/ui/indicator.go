// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
)

// PhaseIndicator — кружок в углу экрана, цвет которого показывает фазу
// матча. It pulses briefly whenever the phase changes.
type PhaseIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	last       component.Phase
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// PhaseColor maps a phase to its indicator colour.
func PhaseColor(p component.Phase) color.RGBA {
	switch p {
	case component.PhaseWaiting:
		return config.WaitingColor
	case component.PhaseAttacking:
		return config.AttackingColor
	case component.PhaseTransitioning:
		return config.TransitionColor
	case component.PhaseDone:
		return config.DoneColor
	}
	return config.IndicatorStroke
}

// Draw отрисовывает индикатор
func (i *PhaseIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	if phase != i.last {
		i.last = phase
		i.LastChange = time.Now()
	}
	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, config.IndicatorStroke, true)
}
