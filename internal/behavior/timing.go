// -- internal/behavior/timing.go --
package behavior

import "time"

// readingBaseMs maps an action category to the nominal time a player spends
// comprehending its outcome. Unknown categories fall back to a menu-ish pause.
var readingBaseMs = map[ActionType]float64{
	ActionCombat: 2000,
	ActionCrime:  1500,
	ActionSocial: 1000,
	ActionShop:   800,
	ActionMenu:   500,
	ActionTravel: 600,
	ActionInput:  400,
}

const defaultReadingBaseMs = 500

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// thinkingDelay is the pre-action deliberation pause. Complexity widens the
// base, fatigue and importance stretch it, and low attention adds jitter.
func thinkingDelay(s CognitiveState, a GameAction, rng RNG) time.Duration {
	base := (0.5 + a.Complexity*1.5) * 1000
	fatigueMul := 1 + s.Fatigue
	importanceMul := 1.0
	if a.Important {
		importanceMul = 1.3
	}
	attnVar := (1 - s.Attention) * 0.5
	return millis(base * fatigueMul * importanceMul * (1 + rng.Float64()*attnVar))
}

// readingDelay is the post-action comprehension pause: the deterministic term
// plus an independent 0.5-1.5x variance term of the same magnitude.
func readingDelay(s CognitiveState, a GameAction, rng RNG) time.Duration {
	base, ok := readingBaseMs[a.Type]
	if !ok {
		base = defaultReadingBaseMs
	}
	attnFactor := 0.5 + 0.5*s.Attention
	impFactor := 1.0
	if a.Important {
		impFactor = 1.5
	}
	fatFactor := 1 + 0.3*s.Fatigue
	d := base * attnFactor * impFactor * fatFactor
	return millis(d + d*(0.5+rng.Float64()))
}

// preExecutionDelay is the hand-to-mouse latency before the action fires.
func preExecutionDelay(rng RNG) time.Duration {
	return millis(100 + rng.Float64()*300)
}

// postExecutionDelay is the settle pause after the action returns.
func postExecutionDelay(rng RNG) time.Duration {
	return millis(50 + rng.Float64()*200)
}

// TypingDelay estimates how long a human would take to type text in the given
// cognitive state. Per character: a 200-300ms stroke, stretched by fatigue and
// destabilized by low attention; occasionally a typo-and-retype adds a
// 500-1000ms stumble. The total is zero for empty text and, ignoring the
// random typo additions, non-decreasing in text length.
func TypingDelay(text string, s CognitiveState, rng RNG) time.Duration {
	totalMs := 0.0
	typoRate := 0.05 + (1-s.Attention)*0.05
	for range text {
		charMs := (200 + rng.Float64()*100) *
			(1 + s.Fatigue*0.5) *
			(1 + (rng.Float64()-0.5)*(1-s.Attention)*0.3)
		totalMs += charMs
		if rng.Float64() < typoRate {
			totalMs += 500 + rng.Float64()*500
		}
	}
	return millis(totalMs)
}

// ShouldZoneOut reports whether the agent briefly loses focus. Boredom is the
// dominant driver, then fatigue, then inattention.
func ShouldZoneOut(s CognitiveState, rng RNG) bool {
	p := (1-s.Attention)*0.02 + s.Fatigue*0.03 + s.Boredom*0.05
	return rng.Float64() < p
}

// ZoneOutDuration is the length of a zone-out lapse: 2-5s normally, with an
// extra 5-15s tacked on when the agent is badly fatigued or bored.
func ZoneOutDuration(s CognitiveState, rng RNG) time.Duration {
	ms := 2000 + rng.Float64()*3000
	if s.Fatigue > 0.7 || s.Boredom > 0.7 {
		ms += 5000 + rng.Float64()*10000
	}
	return millis(ms)
}
