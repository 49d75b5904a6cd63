// Package roll implements the roll mechanics shared by every field builder:
// formula evaluation, advantage/disadvantage resolution, the multiroll
// engine, critical extra construction and label placement.
package roll

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/roll-api/internal/errors"
)

var diceTermRegex = regexp.MustCompile(`^(\d*)d(\d+)$`)

// groupSpec is a parsed dice term such as "2d6"
type groupSpec struct {
	Count int32
	Sides int32
	Sign  int32 // +1 or -1
}

// Formula is a parsed dice formula such as "2d6+1d4+3".
// Immutable once parsed; the combining helpers return new values.
type Formula struct {
	raw      string
	groups   []groupSpec
	modifier int32
}

// ParseFormula parses a formula of +/- separated dice terms and integer
// constants. An empty formula is invalid.
func ParseFormula(formula string) (*Formula, error) {
	cleaned := strings.ReplaceAll(formula, " ", "")
	if cleaned == "" {
		return nil, errors.InvalidArgument("formula is empty")
	}

	// Normalize so every term carries an explicit sign, then split
	if cleaned[0] != '+' && cleaned[0] != '-' {
		cleaned = "+" + cleaned
	}

	f := &Formula{raw: formula}
	for i := 0; i < len(cleaned); {
		sign := int32(1)
		if cleaned[i] == '-' {
			sign = -1
		} else if cleaned[i] != '+' {
			return nil, errors.InvalidArgumentf("invalid formula: %s", formula)
		}
		i++

		j := i
		for j < len(cleaned) && cleaned[j] != '+' && cleaned[j] != '-' {
			j++
		}
		term := strings.ToLower(cleaned[i:j])
		i = j

		if term == "" {
			return nil, errors.InvalidArgumentf("invalid formula: %s", formula)
		}

		if matches := diceTermRegex.FindStringSubmatch(term); matches != nil {
			count := int32(1)
			if matches[1] != "" {
				n, err := strconv.Atoi(matches[1])
				if err != nil || n <= 0 {
					return nil, errors.InvalidArgumentf("invalid dice count in term: %s", term)
				}
				count = int32(n)
			}
			sides, err := strconv.Atoi(matches[2])
			if err != nil || sides <= 0 {
				return nil, errors.InvalidArgumentf("invalid die size in term: %s", term)
			}
			f.groups = append(f.groups, groupSpec{Count: count, Sides: int32(sides), Sign: sign})
			continue
		}

		n, err := strconv.Atoi(term)
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid term %q in formula %q", term, formula)
		}
		f.modifier += sign * int32(n)
	}

	return f, nil
}

// String reconstructs a canonical formula string
func (f *Formula) String() string {
	var sb strings.Builder
	for i, g := range f.groups {
		if g.Sign < 0 {
			sb.WriteString("-")
		} else if i > 0 {
			sb.WriteString("+")
		}
		fmt.Fprintf(&sb, "%dd%d", g.Count, g.Sides)
	}
	if f.modifier != 0 {
		if f.modifier > 0 && sb.Len() > 0 {
			sb.WriteString("+")
		}
		fmt.Fprintf(&sb, "%d", f.modifier)
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// HasDice reports whether the formula contains at least one dice term
func (f *Formula) HasDice() bool {
	return len(f.groups) > 0
}

// Min returns the lowest possible total. A subtracted group contributes
// its highest roll here, since that is what minimizes the total.
func (f *Formula) Min() int32 {
	total := f.modifier
	for _, g := range f.groups {
		if g.Sign < 0 {
			total -= g.Count * g.Sides
		} else {
			total += g.Count
		}
	}
	return total
}

// Max returns the highest possible total
func (f *Formula) Max() int32 {
	total := f.modifier
	for _, g := range f.groups {
		if g.Sign < 0 {
			total -= g.Count
		} else {
			total += g.Count * g.Sides
		}
	}
	return total
}

// DiceOnly returns a copy of the formula with constant terms stripped.
// Used by crit extra policies, which double dice but never modifiers.
func (f *Formula) DiceOnly() *Formula {
	out := &Formula{groups: make([]groupSpec, len(f.groups))}
	copy(out.groups, f.groups)
	out.raw = out.String()
	return out
}

// Append returns a new formula with other appended the given number of
// times. Used for cantrip and slot-level scaling.
func (f *Formula) Append(other *Formula, times int32) *Formula {
	out := &Formula{
		groups:   make([]groupSpec, len(f.groups)),
		modifier: f.modifier,
	}
	copy(out.groups, f.groups)
	for i := int32(0); i < times; i++ {
		out.groups = append(out.groups, other.groups...)
		out.modifier += other.modifier
	}
	out.raw = out.String()
	return out
}

// GroupResult is one evaluated dice term
type GroupResult struct {
	Count int32
	Sides int32
	Sign  int32
	Dice  []int32
}

// Result is a single evaluated formula
type Result struct {
	Formula  string
	Groups   []GroupResult
	Modifier int32
	Total    int32
	Min      int32
	Max      int32
}

// PrimaryFace returns the first rolled face of the first dice group, the
// die checked against the crit threshold. Zero when no dice were rolled.
func (r *Result) PrimaryFace() int32 {
	if len(r.Groups) == 0 || len(r.Groups[0].Dice) == 0 {
		return 0
	}
	return r.Groups[0].Dice[0]
}

// AllDice returns every rolled face across all groups, in roll order
func (r *Result) AllDice() []int32 {
	var out []int32
	for _, g := range r.Groups {
		out = append(out, g.Dice...)
	}
	return out
}

// Evaluate rolls the formula once with the given roller
func (f *Formula) Evaluate(roller dice.Roller) (*Result, error) {
	result := &Result{
		Formula:  f.String(),
		Modifier: f.modifier,
		Total:    f.modifier,
		Min:      f.Min(),
		Max:      f.Max(),
	}

	for _, g := range f.groups {
		faces, err := roller.RollN(int(g.Count), int(g.Sides))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %dd%d", g.Count, g.Sides)
		}

		gr := GroupResult{Count: g.Count, Sides: g.Sides, Sign: g.Sign, Dice: make([]int32, 0, len(faces))}
		for _, face := range faces {
			gr.Dice = append(gr.Dice, int32(face))
			result.Total += g.Sign * int32(face)
		}
		result.Groups = append(result.Groups, gr)
	}

	return result, nil
}

// MaxResult produces the result of the formula with every die at its
// maximum face, without rolling. Used by the raw-max crit behavior.
func (f *Formula) MaxResult() *Result {
	result := &Result{
		Formula:  f.String(),
		Modifier: f.modifier,
		Total:    f.Max(),
		Min:      f.Min(),
		Max:      f.Max(),
	}
	return result
}

// EvaluateFormula parses and rolls a formula in a single call
func EvaluateFormula(roller dice.Roller, formula string) (*Result, error) {
	f, err := ParseFormula(formula)
	if err != nil {
		return nil, err
	}
	return f.Evaluate(roller)
}
