package roll

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// DefaultCritThreshold is the minimum primary die face counted as a crit
const DefaultCritThreshold int32 = 20

// DiceSink receives every evaluated result so the host can visualize all
// physical dice. The dicepool collection implements it.
type DiceSink interface {
	Push(results ...*Result)
}

// MultiRollInput configures a multiroll
type MultiRollInput struct {
	Formula string
	Title   string

	// State decides the winner-selection policy
	State State

	// RollType tags the roll for display ("attack", "check", "custom")
	RollType string

	// CritThreshold defaults to 20 when zero
	CritThreshold int32

	// NumRolls overrides the computed roll count when positive
	NumRolls int32

	// DefaultRollCount is the configured die count for the normal case
	// (the d20 mode setting); treated as 1 when zero
	DefaultRollCount int32

	// ElvenAccuracy bumps a 2-die advantage roll to 3 dice
	ElvenAccuracy bool
}

// Outcome is one evaluated roll inside a multiroll
type Outcome struct {
	Result *Result

	// Ignored marks outcomes not chosen under the roll state policy.
	// Display only: ignored dice still count toward the dice pool.
	Ignored bool

	// IsCrit marks outcomes whose primary face met the crit threshold
	IsCrit bool
}

// MultiRoll is the product of the multiroll engine
type MultiRoll struct {
	Title    string
	Formula  string
	State    State
	RollType string

	Outcomes    []Outcome
	ChosenTotal int32

	// IsCrit is true when at least one non-ignored outcome crit
	IsCrit bool
}

// rollCount resolves the number of independent rolls to perform
func rollCount(input *MultiRollInput) int32 {
	count := input.DefaultRollCount
	if count < 1 {
		count = 1
	}
	if input.NumRolls > 0 {
		count = input.NumRolls
	}
	if input.State != StateNone && count == 1 {
		count = 2
	}
	// The extra accuracy die only applies when picking the highest
	if count == 2 && input.ElvenAccuracy && input.State != StateLowest {
		count = 3
	}
	return count
}

// ConstructMultiRoll evaluates the formula independently under the roll
// state policy and marks the losing outcomes as ignored. Every evaluated
// result is appended to the sink when one is supplied.
func ConstructMultiRoll(roller dice.Roller, input *MultiRollInput, sink DiceSink) (*MultiRoll, error) {
	formula, err := ParseFormula(input.Formula)
	if err != nil {
		return nil, err
	}

	threshold := input.CritThreshold
	if threshold <= 0 {
		threshold = DefaultCritThreshold
	}

	count := rollCount(input)

	multi := &MultiRoll{
		Title:    input.Title,
		Formula:  formula.String(),
		State:    input.State,
		RollType: input.RollType,
		Outcomes: make([]Outcome, 0, count),
	}

	for i := int32(0); i < count; i++ {
		result, err := formula.Evaluate(roller)
		if err != nil {
			return nil, err
		}
		if sink != nil {
			sink.Push(result)
		}
		multi.Outcomes = append(multi.Outcomes, Outcome{
			Result: result,
			IsCrit: result.PrimaryFace() >= threshold,
		})
	}

	if input.State == StateNone {
		multi.ChosenTotal = multi.Outcomes[0].Result.Total
	} else {
		totals := make([]int32, len(multi.Outcomes))
		for i, o := range multi.Outcomes {
			totals[i] = o.Result.Total
		}
		sort.Slice(totals, func(i, j int) bool { return totals[i] < totals[j] })

		chosen := totals[len(totals)-1]
		if input.State == StateLowest {
			chosen = totals[0]
		}
		multi.ChosenTotal = chosen

		for i := range multi.Outcomes {
			if multi.Outcomes[i].Result.Total != chosen {
				multi.Outcomes[i].Ignored = true
			}
		}
	}

	for _, o := range multi.Outcomes {
		if !o.Ignored && o.IsCrit {
			multi.IsCrit = true
			break
		}
	}

	return multi, nil
}
