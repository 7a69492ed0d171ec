// internal/behavior/timing_test.go
package behavior

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThinkingDelayFormula(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		state  CognitiveState
		action GameAction
		rng    RNG
		wantMs float64
	}{
		{
			// base (0.5+0.8*1.5)*1000 = 1700, *1.3 important, no fatigue, full
			// attention kills the jitter term.
			name:   "rested_important_combat",
			state:  CognitiveState{Attention: 1},
			action: GameAction{Type: ActionCombat, Complexity: 0.8, Important: true},
			rng:    constRNG(0.5),
			wantMs: 2210,
		},
		{
			// base 1250, *1.5 fatigue, *1.3 important, jitter 1+0.5*0.25.
			name:   "tired_distracted",
			state:  CognitiveState{Attention: 0.5, Fatigue: 0.5},
			action: GameAction{Complexity: 0.5, Important: true},
			rng:    constRNG(0.5),
			wantMs: 2742.1875,
		},
		{
			// Trivial unimportant action at full attention: the floor case.
			name:   "trivial_menu",
			state:  CognitiveState{Attention: 1},
			action: GameAction{Type: ActionMenu},
			rng:    constRNG(0),
			wantMs: 500,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := thinkingDelay(tc.state, tc.action, tc.rng)
			assert.InDelta(t, tc.wantMs, float64(got)/float64(time.Millisecond), 1e-6)
		})
	}
}

func TestReadingDelayFormula(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		state  CognitiveState
		action GameAction
		wantMs float64
	}{
		{
			// combat base 2000, full attention, important, no fatigue:
			// d = 2000*1*1.5 = 3000; with rng 0.5 the variance term doubles it.
			name:   "combat_important",
			state:  CognitiveState{Attention: 1},
			action: GameAction{Type: ActionCombat, Important: true},
			wantMs: 6000,
		},
		{
			// Unknown type falls back to the 500ms base.
			name:   "unknown_type_fallback",
			state:  CognitiveState{Attention: 1},
			action: GameAction{Type: ActionType("festival")},
			wantMs: 1000,
		},
		{
			// input base 400, attnFactor 0.5 at zero attention, fatFactor 1.3.
			// d = 400*0.5*1*1.3 = 260; doubled by the rng-0.5 variance term.
			name:   "exhausted_input",
			state:  CognitiveState{Attention: 0, Fatigue: 1},
			action: GameAction{Type: ActionInput},
			wantMs: 520,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := readingDelay(tc.state, tc.action, constRNG(0.5))
			assert.InDelta(t, tc.wantMs, float64(got)/float64(time.Millisecond), 1e-6)
		})
	}
}

func TestExecutionVarianceBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, millis(100), preExecutionDelay(constRNG(0)))
	assert.Equal(t, millis(50), postExecutionDelay(constRNG(0)))
	// Upper bounds are exclusive of rng()==1 but approached at 0.999...
	assert.Less(t, preExecutionDelay(constRNG(0.9999)), millis(400))
	assert.Less(t, postExecutionDelay(constRNG(0.9999)), millis(250))
}

func TestTypingDelayEmptyTextIsZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Duration(0), TypingDelay("", CognitiveState{Attention: 1}, constRNG(0.5)))
}

// TestTypingDelayMonotonicInLength pins the RNG to 0.5, which suppresses the
// typo branch at full attention, making the per-character cost exactly 250ms.
func TestTypingDelayMonotonicInLength(t *testing.T) {
	t.Parallel()

	state := CognitiveState{Attention: 1}
	var prev time.Duration
	for _, text := range []string{"", "d", "duel", "holster up", "meet me at high noon"} {
		d := TypingDelay(text, state, constRNG(0.5))
		assert.GreaterOrEqual(t, d, prev, "typing time should not shrink as text grows")
		assert.InDelta(t, 250*float64(len(text)), float64(d)/float64(time.Millisecond), 1e-6)
		prev = d
	}
}

func TestTypingDelayFatigueStretchesStrokes(t *testing.T) {
	t.Parallel()

	rested := TypingDelay("showdown", CognitiveState{Attention: 1}, constRNG(0.5))
	tired := TypingDelay("showdown", CognitiveState{Attention: 1, Fatigue: 1}, constRNG(0.5))
	assert.InDelta(t, 1.5, float64(tired)/float64(rested), 1e-9)
}

func TestTypingDelayTypoStumble(t *testing.T) {
	t.Parallel()

	// rng 0.01 always lands under the 5% typo floor: every character adds a
	// 500+0.01*500 = 505ms stumble on top of its stroke.
	state := CognitiveState{Attention: 1}
	d := TypingDelay("ok", state, constRNG(0.01))
	strokeMs := (200 + 0.01*100) * (1 + (0.01-0.5)*0*0.3)
	assert.InDelta(t, 2*(strokeMs+505), float64(d)/float64(time.Millisecond), 1e-6)
}

func TestShouldZoneOut(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		state CognitiveState
		rng   RNG
		want  bool
	}{
		{name: "fresh_state_never", state: CognitiveState{Attention: 1}, rng: constRNG(0), want: false},
		{name: "bored_agent_drifts", state: CognitiveState{Attention: 1, Boredom: 1}, rng: constRNG(0.04), want: true},
		{name: "bored_agent_lucky_roll", state: CognitiveState{Attention: 1, Boredom: 1}, rng: constRNG(0.06), want: false},
		{name: "worst_case_rate", state: CognitiveState{Attention: 0, Fatigue: 1, Boredom: 1}, rng: constRNG(0.0999), want: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ShouldZoneOut(tc.state, tc.rng))
		})
	}
}

func TestZoneOutDuration(t *testing.T) {
	t.Parallel()

	// Normal lapse: 2000 + 0.5*3000.
	normal := ZoneOutDuration(CognitiveState{Attention: 1}, constRNG(0.5))
	assert.Equal(t, millis(3500), normal)

	// Heavy fatigue adds the extended drift: + 5000 + 0.5*10000.
	drained := ZoneOutDuration(CognitiveState{Attention: 1, Fatigue: 0.8}, constRNG(0.5))
	assert.Equal(t, millis(13500), drained)
}
