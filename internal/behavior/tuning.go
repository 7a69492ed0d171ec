package behavior

// Hand-tuned model coefficients. None of these derive from real telemetry;
// they are heuristics chosen so that long agent sessions look plausibly human.
// Changing one shifts the whole equilibrium, so they live here in one place.
const (
	// Attention decays faster the more it has already decayed.
	attentionDecayBase  = 0.01
	attentionDecayAccel = 0.5

	// Fatigue grows with every action, more for complex ones.
	fatigueFlatGain       = 0.015
	fatigueComplexityGain = 0.015

	// Boredom reacts to variety in the recent action window.
	historyWindow      = 10
	boredomMonotonyMax = 3 // fewer distinct types than this reads as grinding
	boredomVarietyMin  = 6 // more distinct types than this reads as varied play
	boredomGain        = 0.05
	boredomRelief      = 0.02

	// Frustration moves asymmetrically: losing stings more than winning helps.
	frustrationFailImportant    = 0.15
	frustrationFail             = 0.10
	frustrationSuccessImportant = 0.08
	frustrationSuccess          = 0.05
	frustrationCallbackError    = 0.10
	frustrationPerMistake       = 0.03

	// Mistake likelihood coefficients.
	mistakeAttentionWeight   = 0.10
	mistakeFatigueWeight     = 0.05
	mistakeFrustrationWeight = 0.03
	mistakeImportantDamping  = 0.5
	mistakeComplexityBonus   = 0.2
	mistakeRateCap           = 0.25

	// Break trigger and escalation thresholds.
	breakFatigueTrigger     = 0.8
	breakBoredomTrigger     = 0.7
	breakFrustrationTrigger = 0.9
	longBreakThreshold      = 0.9
	shortBreakThreshold     = 0.7
)
