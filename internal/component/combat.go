package component

// Damage — накопленный урон и пороги разрушения.
// Damage only ever grows.
type Damage struct {
	Damage            float64
	DestroyThreshold  float64
	MinImpactVelocity float64
}

// Tier is the visual state of a damageable entity.
type Tier int

const (
	TierIntact Tier = iota
	TierDamaged
	TierCrumbling
	TierRuined
)

// TierFor partitions damage/threshold into thirds. It has no memory:
// the same damage always yields the same tier.
func TierFor(damage, threshold float64) Tier {
	ratio := damage / threshold
	switch {
	case ratio < 1.0/3:
		return TierIntact
	case ratio < 2.0/3:
		return TierDamaged
	case ratio < 1:
		return TierCrumbling
	}
	return TierRuined
}

// Tier returns the tier for the current damage.
func (d *Damage) Tier() Tier {
	return TierFor(d.Damage, d.DestroyThreshold)
}

// Exceeded reports whether the entity must be destroyed.
func (d *Damage) Exceeded() bool {
	return d.Damage > d.DestroyThreshold
}
