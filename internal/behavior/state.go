// internal/behavior/state.go
package behavior

import "math"

// actionHistory is a fixed-capacity ring of recent action type labels. It
// exists purely to answer "how varied was recent play" for the boredom model.
type actionHistory struct {
	slots [historyWindow]ActionType
	next  int
	size  int
}

func (h *actionHistory) push(t ActionType) {
	h.slots[h.next] = t
	h.next = (h.next + 1) % historyWindow
	if h.size < historyWindow {
		h.size++
	}
}

func (h *actionHistory) clear() {
	h.next = 0
	h.size = 0
}

// snapshot returns the window oldest-first.
func (h *actionHistory) snapshot() []ActionType {
	out := make([]ActionType, 0, h.size)
	start := h.next - h.size
	if start < 0 {
		start += historyWindow
	}
	for i := 0; i < h.size; i++ {
		out = append(out, h.slots[(start+i)%historyWindow])
	}
	return out
}

func (h *actionHistory) distinct() int {
	seen := make(map[ActionType]struct{}, h.size)
	for _, t := range h.snapshot() {
		seen[t] = struct{}{}
	}
	return len(seen)
}

// stateTracker owns the cognitive state and its transition rules. It is not
// safe for concurrent use; each engine instance owns exactly one tracker and
// runs a single cooperative sequence over it.
type stateTracker struct {
	state   CognitiveState
	history actionHistory
}

func newStateTracker() *stateTracker {
	return &stateTracker{state: CognitiveState{Attention: 1}}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// decayAttention models vigilance collapse: the lower attention already is,
// the faster it keeps dropping.
func (t *stateTracker) decayAttention() {
	decay := attentionDecayBase * (1 + (1-t.state.Attention)*attentionDecayAccel)
	t.state.Attention = clamp01(t.state.Attention - decay)
}

func (t *stateTracker) increaseFatigue(complexity float64) {
	t.state.Fatigue = clamp01(t.state.Fatigue + fatigueFlatGain + complexity*fatigueComplexityGain)
}

// updateBoredom pushes the action type into the history window, then adjusts
// boredom by how monotonous or varied the window looks.
func (t *stateTracker) updateBoredom(actionType ActionType) {
	t.history.push(actionType)
	switch d := t.history.distinct(); {
	case d < boredomMonotonyMax:
		t.state.Boredom = clamp01(t.state.Boredom + boredomGain)
	case d > boredomVarietyMin:
		t.state.Boredom = clamp01(t.state.Boredom - boredomRelief)
	}
}

// recordResult applies the asymmetric frustration update for a game outcome
// the caller determined on its own.
func (t *stateTracker) recordResult(success, important bool) {
	var delta float64
	switch {
	case !success && important:
		delta = frustrationFailImportant
	case !success:
		delta = frustrationFail
	case important:
		delta = -frustrationSuccessImportant
	default:
		delta = -frustrationSuccess
	}
	t.state.Frustration = clamp01(t.state.Frustration + delta)
}

func (t *stateTracker) addFrustration(delta float64) {
	t.state.Frustration = clamp01(t.state.Frustration + delta)
}

// adjust applies a partial override, clamping each supplied field.
func (t *stateTracker) adjust(adj StateAdjustment) {
	if adj.Attention != nil {
		t.state.Attention = clamp01(*adj.Attention)
	}
	if adj.Fatigue != nil {
		t.state.Fatigue = clamp01(*adj.Fatigue)
	}
	if adj.Boredom != nil {
		t.state.Boredom = clamp01(*adj.Boredom)
	}
	if adj.Frustration != nil {
		t.state.Frustration = clamp01(*adj.Frustration)
	}
}

// reset returns the tracker to the fully rested state and forgets the window.
func (t *stateTracker) reset() {
	t.state = CognitiveState{Attention: 1}
	t.history.clear()
}
