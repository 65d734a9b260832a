package component

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		damage, threshold float64
		want              Tier
	}{
		{0, 100, TierIntact},
		{33, 100, TierIntact},
		{34, 100, TierDamaged},
		{40, 100, TierDamaged},
		{66, 100, TierDamaged},
		{67, 100, TierCrumbling},
		{80, 100, TierCrumbling},
		{99.9, 100, TierCrumbling},
		{100, 100, TierRuined},
		{120, 100, TierRuined},
	}
	for _, tt := range tests {
		if got := TierFor(tt.damage, tt.threshold); got != tt.want {
			t.Errorf("TierFor(%v, %v) = %v, want %v", tt.damage, tt.threshold, got, tt.want)
		}
	}
}

func TestTierFor_NoHysteresis(t *testing.T) {
	first := TierFor(50, 100)
	_ = TierFor(90, 100)
	if again := TierFor(50, 100); again != first {
		t.Errorf("TierFor changed for the same input: %v then %v", first, again)
	}
}

func TestDamage_Exceeded(t *testing.T) {
	d := Damage{Damage: 100, DestroyThreshold: 100}
	if d.Exceeded() {
		t.Error("damage equal to threshold must not destroy")
	}
	d.Damage = 100.01
	if !d.Exceeded() {
		t.Error("damage above threshold must destroy")
	}
}

func TestPhase_String(t *testing.T) {
	if PhaseAttacking.String() != "attacking" {
		t.Errorf("PhaseAttacking = %q", PhaseAttacking.String())
	}
	if Phase(42).String() != "invalid" {
		t.Errorf("unknown phase = %q", Phase(42).String())
	}
}
