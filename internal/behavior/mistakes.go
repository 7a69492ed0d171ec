// internal/behavior/mistakes.go
package behavior

// MistakeKind names a simulated UI slip-up.
type MistakeKind string

const (
	MistakeWrongButton MistakeKind = "click_wrong_button"
	MistakeTypo        MistakeKind = "typo_in_input"
	MistakeWrongPage   MistakeKind = "navigate_wrong_page"
	MistakeCloseModal  MistakeKind = "close_modal_accident"
)

// Mistake is one catalog entry: a kind, its selection weight, and the nominal
// time a human needs to undo it.
type Mistake struct {
	Kind       MistakeKind
	weight     float64
	recoveryMs float64
}

// mistakeCatalog is static and read-only. Weights sum to 1 before the
// per-action typo boost is applied.
var mistakeCatalog = []Mistake{
	{Kind: MistakeWrongButton, weight: 0.4, recoveryMs: 2000},
	{Kind: MistakeTypo, weight: 0.3, recoveryMs: 1500},
	{Kind: MistakeWrongPage, weight: 0.2, recoveryMs: 3000},
	{Kind: MistakeCloseModal, weight: 0.1, recoveryMs: 2500},
}

// mistakeRate is the full action-weighted trigger rate. Important actions are
// performed more carefully; complex ones offer more ways to slip.
func mistakeRate(s CognitiveState, a GameAction, multiplier float64) float64 {
	rate := (1-s.Attention)*mistakeAttentionWeight +
		s.Fatigue*mistakeFatigueWeight +
		s.Frustration*mistakeFrustrationWeight
	if a.Important {
		rate *= mistakeImportantDamping
	}
	rate *= 1 + a.Complexity*mistakeComplexityBonus
	return rate * multiplier
}

// CalculateMistakeRate is the introspection variant of the trigger rate: the
// raw state-driven rate with no action-specific multipliers, hard-capped at
// mistakeRateCap.
func CalculateMistakeRate(s CognitiveState) float64 {
	rate := (1-s.Attention)*mistakeAttentionWeight +
		s.Fatigue*mistakeFatigueWeight +
		s.Frustration*mistakeFrustrationWeight
	if rate > mistakeRateCap {
		rate = mistakeRateCap
	}
	return rate
}

// pickMistake selects a catalog entry by cumulative weighted draw. Text-entry
// actions double the typo weight before renormalizing.
func pickMistake(a GameAction, rng RNG) Mistake {
	weights := make([]float64, len(mistakeCatalog))
	total := 0.0
	for i, m := range mistakeCatalog {
		w := m.weight
		if a.Type == ActionInput && m.Kind == MistakeTypo {
			w *= 2
		}
		weights[i] = w
		total += w
	}

	roll := rng.Float64() * total
	for i, m := range mistakeCatalog {
		roll -= weights[i]
		if roll < 0 {
			return m
		}
	}
	// Float drift can leave roll fractionally above zero after the last entry.
	return mistakeCatalog[len(mistakeCatalog)-1]
}
