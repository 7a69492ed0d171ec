// internal/behavior/types.go
package behavior

import (
	"context"
	"time"
)

// ActionType labels the six abstract action categories the timing tables
// understand, plus "input" for free-text entry.
type ActionType string

const (
	ActionCombat ActionType = "combat"
	ActionCrime  ActionType = "crime"
	ActionTravel ActionType = "travel"
	ActionShop   ActionType = "shop"
	ActionSocial ActionType = "social"
	ActionMenu   ActionType = "menu"
	ActionInput  ActionType = "input"
)

// GameAction describes the action an agent is about to perform. It is an
// opaque descriptor as far as this package is concerned; only the category,
// complexity and flags feed the timing and mistake models.
type GameAction struct {
	Type ActionType
	// Complexity is the cognitive load of the action, normalized to [0,1].
	Complexity float64
	// Repetitive marks grind-style actions (skill training, farming).
	Repetitive bool
	// Important marks actions the agent would double-check (trades, duels).
	Important bool
}

// CognitiveState is the four-scalar vector driving every timing, mistake and
// break decision. Every field stays within [0,1]; all mutation paths clamp.
type CognitiveState struct {
	Attention   float64
	Fatigue     float64
	Boredom     float64
	Frustration float64
}

// StateAdjustment is a partial override of the cognitive state. Nil fields are
// left untouched; set fields are clamped to [0,1] before being applied.
type StateAdjustment struct {
	Attention   *float64
	Fatigue     *float64
	Boredom     *float64
	Frustration *float64
}

// Statistics is a point-in-time snapshot of an engine's counters.
type Statistics struct {
	TotalActions        int
	TotalMistakes       int
	TotalBreaks         int
	RecentActions       []ActionType
	UniqueRecentActions int
}

// RNG is the injectable randomness capability. *math/rand.Rand satisfies it;
// tests substitute a seeded or scripted source to make every probabilistic
// branch deterministic.
type RNG interface {
	Float64() float64
}

// Sleeper performs the actual waiting. The production implementation blocks on
// a timer; tests substitute a recorder so delay sequences can be asserted
// without wall-clock time.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// timerSleeper is the production Sleeper.
type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
