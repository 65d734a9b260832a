package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
}

func TestLoad_OverridesOnlyPresentKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	data := []byte(`{"max_turn_time": 5, "settle_policy": "threshold", "settle_threshold": 0.5}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.MaxTurnTime != 5 {
		t.Errorf("MaxTurnTime = %v, want 5", s.MaxTurnTime)
	}
	if s.SettlePolicy != SettleThreshold {
		t.Errorf("SettlePolicy = %q, want %q", s.SettlePolicy, SettleThreshold)
	}
	if s.ScalingFactor != Default().ScalingFactor {
		t.Errorf("ScalingFactor = %v, want default %v", s.ScalingFactor, Default().ScalingFactor)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero scaling", func(s *Settings) { s.ScalingFactor = 0 }},
		{"zero fps", func(s *Settings) { s.FPS = 0 }},
		{"zero iterations", func(s *Settings) { s.Iterations = 0 }},
		{"zero damage factor", func(s *Settings) { s.DamageFactor = 0 }},
		{"narrow level", func(s *Settings) { s.LevelWidth = ScreenWidth - 1 }},
		{"unknown policy", func(s *Settings) { s.SettlePolicy = "maybe" }},
		{"negative threshold", func(s *Settings) { s.SettleThreshold = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestUnitConversions(t *testing.T) {
	s := Default()
	s.ScalingFactor = 20
	if got := s.ToMeters(100); got != 5 {
		t.Errorf("ToMeters(100) = %v, want 5", got)
	}
	if got := s.ToPixels(5); got != 100 {
		t.Errorf("ToPixels(5) = %v, want 100", got)
	}
	if got := s.LevelWidthMeters(); got != s.LevelWidth/20 {
		t.Errorf("LevelWidthMeters() = %v", got)
	}
}
