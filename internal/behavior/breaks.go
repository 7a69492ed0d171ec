// internal/behavior/breaks.go
package behavior

import (
	"math"
	"time"
)

// BreakTier classifies a rest pause by severity.
type BreakTier string

const (
	BreakMicro BreakTier = "micro"
	BreakShort BreakTier = "short"
	BreakLong  BreakTier = "long"
)

// shouldTakeBreak reports whether the cognitive state has degraded enough
// that a human would step away.
func shouldTakeBreak(s CognitiveState) bool {
	return s.Fatigue > breakFatigueTrigger ||
		s.Boredom > breakBoredomTrigger ||
		s.Frustration > breakFrustrationTrigger
}

// planBreak chooses the break tier and its raw (unscaled) duration. Tiers are
// checked most severe first.
func planBreak(s CognitiveState, rng RNG) (BreakTier, time.Duration) {
	switch {
	case s.Fatigue > longBreakThreshold || s.Boredom > longBreakThreshold || s.Frustration > breakFrustrationTrigger:
		return BreakLong, time.Duration((5 + rng.Float64()*10) * float64(time.Minute))
	case s.Fatigue > shortBreakThreshold || s.Boredom > shortBreakThreshold:
		return BreakShort, time.Duration((1 + rng.Float64()*4) * float64(time.Minute))
	default:
		return BreakMicro, time.Duration((30 + rng.Float64()*90) * float64(time.Second))
	}
}

// applyRecovery restores the cognitive state according to the break tier and
// clears the action history, a fresh start after resting.
func (t *stateTracker) applyRecovery(tier BreakTier) {
	s := &t.state
	switch tier {
	case BreakLong:
		s.Attention = 1
		s.Fatigue = 0
		s.Boredom = 0
		s.Frustration = math.Max(0, s.Frustration-0.5)
	case BreakShort:
		s.Attention = math.Min(1, s.Attention+0.5)
		s.Fatigue = math.Max(0, s.Fatigue-0.5)
		s.Boredom = math.Max(0, s.Boredom-0.3)
		s.Frustration = math.Max(0, s.Frustration-0.2)
	case BreakMicro:
		// Micro breaks are too short to relieve boredom.
		s.Attention = math.Min(1, s.Attention+0.2)
		s.Fatigue = math.Max(0, s.Fatigue-0.2)
		s.Frustration = math.Max(0, s.Frustration-0.1)
	}
	t.history.clear()
}
