// internal/agent/script.go
package agent

import (
	"math/rand"

	"github.com/kc92/desperados-destiny-bots/internal/behavior"
)

// scriptEntry weights an action category for random script generation and
// bounds the complexity a draw of that category can take.
type scriptEntry struct {
	actionType    behavior.ActionType
	weight        float64
	minComplexity float64
	maxComplexity float64
	importantOdds float64
	repetitive    bool
}

// scriptTable skews sessions toward the grind loops real playtests exercise:
// mostly crime and combat with menu shuffling in between.
var scriptTable = []scriptEntry{
	{actionType: behavior.ActionCrime, weight: 0.30, minComplexity: 0.2, maxComplexity: 0.6, importantOdds: 0.10, repetitive: true},
	{actionType: behavior.ActionCombat, weight: 0.20, minComplexity: 0.4, maxComplexity: 0.9, importantOdds: 0.30},
	{actionType: behavior.ActionMenu, weight: 0.15, minComplexity: 0.0, maxComplexity: 0.2},
	{actionType: behavior.ActionTravel, weight: 0.10, minComplexity: 0.1, maxComplexity: 0.3, repetitive: true},
	{actionType: behavior.ActionShop, weight: 0.10, minComplexity: 0.2, maxComplexity: 0.5, importantOdds: 0.15},
	{actionType: behavior.ActionSocial, weight: 0.10, minComplexity: 0.2, maxComplexity: 0.7},
	{actionType: behavior.ActionInput, weight: 0.05, minComplexity: 0.3, maxComplexity: 0.8, importantOdds: 0.20},
}

// RandomScript draws n actions from the weighted table.
func RandomScript(rng *rand.Rand, n int) []behavior.GameAction {
	total := 0.0
	for _, e := range scriptTable {
		total += e.weight
	}

	script := make([]behavior.GameAction, 0, n)
	for i := 0; i < n; i++ {
		roll := rng.Float64() * total
		entry := scriptTable[len(scriptTable)-1]
		for _, e := range scriptTable {
			roll -= e.weight
			if roll < 0 {
				entry = e
				break
			}
		}

		script = append(script, behavior.GameAction{
			Type:       entry.actionType,
			Complexity: entry.minComplexity + rng.Float64()*(entry.maxComplexity-entry.minComplexity),
			Repetitive: entry.repetitive,
			Important:  rng.Float64() < entry.importantOdds,
		})
	}
	return script
}
