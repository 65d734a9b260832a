// internal/config/settings.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// SettlePolicy selects how the world decides it has stopped moving.
type SettlePolicy string

const (
	SettleSleep     SettlePolicy = "sleep"
	SettleThreshold SettlePolicy = "threshold"
)

// Settings holds the tunables of a match. Field names follow the JSON
// keys the level files and the command line config use.
type Settings struct {
	ScalingFactor     float64      `json:"scaling_factor"` // pixels per physics meter
	FPS               float64      `json:"fps"`
	Iterations        int          `json:"iterations"`
	MaxTurnTime       float64      `json:"max_turn_time"` // seconds
	DamageFactor      float64      `json:"damage_factor"`
	LevelWidth        float64      `json:"level_width"`
	LevelHeight       float64      `json:"level_height"`
	GroundHeight      float64      `json:"ground_height"`
	FortWidth         float64      `json:"fort_width"`
	LevelPadding      float64      `json:"level_padding"`
	CameraScrollSpeed float64      `json:"camera_scroll_speed"`
	GrabberRadius     float64      `json:"grabber_radius"`
	Gravity           float64      `json:"gravity"`
	SettlePolicy      SettlePolicy `json:"settle_policy"`
	SettleThreshold   float64      `json:"settle_threshold"`
	Seed              int64        `json:"seed"`
}

// Default returns the settings the game ships with.
func Default() Settings {
	return Settings{
		ScalingFactor:     20,
		FPS:               60,
		Iterations:        10,
		MaxTurnTime:       12,
		DamageFactor:      10,
		LevelWidth:        2400,
		LevelHeight:       ScreenHeight,
		GroundHeight:      40,
		FortWidth:         400,
		LevelPadding:      20,
		CameraScrollSpeed: 600,
		GrabberRadius:     10,
		Gravity:           9.8,
		SettlePolicy:      SettleSleep,
		SettleThreshold:   DefaultSettleThreshold,
	}
}

// Load reads a JSON settings file on top of the defaults. Keys absent
// from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()

	file, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(file, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate rejects values the simulation cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.ScalingFactor <= 0:
		return fmt.Errorf("%w: scaling_factor must be positive, got %v", ErrInvalidSettings, s.ScalingFactor)
	case s.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %v", ErrInvalidSettings, s.FPS)
	case s.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidSettings, s.Iterations)
	case s.MaxTurnTime <= 0:
		return fmt.Errorf("%w: max_turn_time must be positive, got %v", ErrInvalidSettings, s.MaxTurnTime)
	case s.DamageFactor <= 0:
		return fmt.Errorf("%w: damage_factor must be positive, got %v", ErrInvalidSettings, s.DamageFactor)
	case s.LevelWidth < ScreenWidth:
		return fmt.Errorf("%w: level_width %v is narrower than the screen", ErrInvalidSettings, s.LevelWidth)
	case s.LevelHeight < ScreenHeight:
		return fmt.Errorf("%w: level_height %v is lower than the screen", ErrInvalidSettings, s.LevelHeight)
	case s.GroundHeight < 0 || s.GroundHeight >= s.LevelHeight:
		return fmt.Errorf("%w: ground_height %v out of range", ErrInvalidSettings, s.GroundHeight)
	case s.CameraScrollSpeed <= 0:
		return fmt.Errorf("%w: camera_scroll_speed must be positive", ErrInvalidSettings)
	case s.SettleThreshold < 0:
		return fmt.Errorf("%w: settle_threshold must not be negative", ErrInvalidSettings)
	}
	if s.SettlePolicy != SettleSleep && s.SettlePolicy != SettleThreshold {
		return fmt.Errorf("%w: unknown settle_policy %q", ErrInvalidSettings, s.SettlePolicy)
	}
	return nil
}

// StepDuration is the fixed simulation step in seconds.
func (s Settings) StepDuration() float64 {
	return 1 / s.FPS
}

// ToMeters converts a pixel distance into physics meters.
func (s Settings) ToMeters(px float64) float64 {
	return px / s.ScalingFactor
}

// ToPixels converts a physics distance into pixels.
func (s Settings) ToPixels(m float64) float64 {
	return m * s.ScalingFactor
}

// LevelWidthMeters is the horizontal extent projectiles may occupy.
func (s Settings) LevelWidthMeters() float64 {
	return s.LevelWidth / s.ScalingFactor
}
