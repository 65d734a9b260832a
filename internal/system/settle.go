package system

import "go-artillery/internal/config"

// Settler decides whether the world has come to rest after a shot. Both
// policies are pure queries over the current engine state.
type Settler struct {
	world     *WorldSystem
	policy    config.SettlePolicy
	threshold float64
}

func NewSettler(world *WorldSystem, policy config.SettlePolicy, threshold float64) *Settler {
	return &Settler{world: world, policy: policy, threshold: threshold}
}

// Settled applies the configured policy. The engine's sleep flags are
// used unless the threshold policy was chosen.
func (s *Settler) Settled() bool {
	if s.policy == config.SettleThreshold {
		return s.world.AllSettled(s.threshold)
	}
	return s.world.AllSleeping()
}

func (s *Settler) Policy() config.SettlePolicy {
	return s.policy
}
