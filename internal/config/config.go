// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	// StartDelay — сколько секунд матч стоит в фазе starting.
	StartDelay = 0.5

	// LaunchTorque is applied to every fresh projectile, signed by the
	// horizontal direction of the shot.
	LaunchTorque = 800.0

	DefaultSettleThreshold = 0.25

	ClickCooldown = 300

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	EnemyKillScore = 10
	PieceKillScore = 1
)

var (
	BackgroundColor  = color.RGBA{200, 220, 250, 255}
	GroundColor      = color.RGBA{51, 34, 0, 255}
	WallColor        = color.RGBA{90, 90, 90, 255}
	WoodColor        = color.RGBA{160, 110, 60, 255}
	RockColor        = color.RGBA{130, 130, 140, 255}
	EnemyColor       = color.RGBA{120, 70, 30, 255}
	WeaponColor      = color.RGBA{60, 60, 60, 255}
	ProjectileColor  = color.RGBA{40, 40, 40, 255}
	BananaColor      = color.RGBA{240, 210, 40, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	WaitingColor     = color.RGBA{70, 130, 180, 220}
	AttackingColor   = color.RGBA{220, 60, 60, 220}
	TransitionColor  = color.RGBA{194, 178, 128, 255}
	DoneColor        = color.RGBA{50, 205, 50, 255}
	AimLineColor     = color.RGBA{255, 255, 0, 128}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	TierShadeFactors = []float64{1.0, 0.8, 0.6, 0.4} // Intact, Damaged, Crumbling, Ruined
)
