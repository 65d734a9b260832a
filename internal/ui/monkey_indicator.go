// internal/ui/monkey_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MonkeyIndicator отображает оставшихся обезьян одной стороны.
type MonkeyIndicator struct {
	X, Y float32
	// RightToLeft fills the boxes from the right edge, for the right fort.
	RightToLeft bool
}

const (
	monkeyRectWidth  = 16
	monkeyRectHeight = 12
	monkeyRectGap    = 9
	borderWidth      = 1
)

var (
	monkeyFill  = color.RGBA{120, 70, 30, 220}
	borderColor = color.White
)

func NewMonkeyIndicator(x, y float32, rightToLeft bool) *MonkeyIndicator {
	return &MonkeyIndicator{X: x, Y: y, RightToLeft: rightToLeft}
}

// Draw рисует по прямоугольнику на каждую обезьяну; живые закрашены.
func (i *MonkeyIndicator) Draw(screen *ebiten.Image, remaining, total int) {
	for j := 0; j < total; j++ {
		rectX := i.X + float32(j)*(monkeyRectWidth+monkeyRectGap)
		if i.RightToLeft {
			rectX = i.X - float32(j+1)*(monkeyRectWidth+monkeyRectGap) + monkeyRectGap
		}
		vector.StrokeRect(screen, rectX, i.Y, monkeyRectWidth, monkeyRectHeight, borderWidth, borderColor, true)
		if j < remaining {
			vector.DrawFilledRect(screen, rectX+borderWidth, i.Y+borderWidth, monkeyRectWidth-borderWidth*2, monkeyRectHeight-borderWidth*2, monkeyFill, true)
		}
	}
}
