package roll

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/roll-api/internal/settings"
)

// BuildCritExtra constructs the critical extra roll for a base damage
// formula under the configured behavior. Returns nil for CritBehaviorNone
// and for formulas with no dice terms (there is nothing to double).
func BuildCritExtra(roller dice.Roller, formula string, behavior settings.CritBehavior) (*Result, error) {
	if behavior == settings.CritBehaviorNone {
		return nil, nil
	}

	parsed, err := ParseFormula(formula)
	if err != nil {
		return nil, err
	}
	diceOnly := parsed.DiceOnly()
	if !diceOnly.HasDice() {
		return nil, nil
	}

	switch behavior {
	case settings.CritBehaviorMax:
		return diceOnly.MaxResult(), nil

	case settings.CritBehaviorMaxPlusRoll:
		rolled, err := diceOnly.Evaluate(roller)
		if err != nil {
			return nil, err
		}
		rolled.Total += diceOnly.Max()
		return rolled, nil

	default:
		// CritBehaviorDouble and any unknown value roll the dice again
		return diceOnly.Evaluate(roller)
	}
}
