package itemroll

import (
	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
	"github.com/KirkDiggler/roll-api/internal/host"
	"github.com/KirkDiggler/roll-api/internal/roll"
	"github.com/KirkDiggler/roll-api/internal/settings"
)

// critExtraIndex marks the secondary crit damage slot; it never scales
// and never picks up actor damage bonuses
const critExtraIndex int32 = -1

// Cantrip damage scales one step per bracket of caster levels (5, 11, 17)
const cantripScaleBracket = 6

// damageArgs carries everything the damage builder needs. The active item
// is threaded explicitly so ammunition damage never swaps shared state.
type damageArgs struct {
	activeItem *vtt.Item

	part  vtt.DamagePart
	index int32

	versatile    bool
	critOverride string
	context      string
}

// rollDamage resolves and evaluates one damage formula slot. A missing
// formula returns a nil entry and no error; the caller skips the field.
func (r *Request) rollDamage(args *damageArgs) (*host.Entry, error) {
	item := args.activeItem

	// The caller limits index "all" expansion to its first sub-roll; an
	// explicit index substitutes regardless of position
	formulaStr := args.part.Formula
	if args.versatile && item.Versatile != "" {
		formulaStr = item.Versatile
	}
	if formulaStr == "" {
		return nil, nil
	}

	formula, err := roll.ParseFormula(formulaStr)
	if err != nil {
		return nil, err
	}

	formula, err = r.applyScaling(item, args.index, formula)
	if err != nil {
		return nil, err
	}

	// Actor-level situational bonuses apply to the first damage slot only
	if args.index == 0 {
		if bonus := r.actor.DamageBonus(item.ActionType); bonus != "" {
			bonusFormula, err := roll.ParseFormula(bonus)
			if err != nil {
				return nil, err
			}
			formula = formula.Append(bonusFormula, 1)
		}
	}

	base, err := formula.Evaluate(r.o.roller)
	if err != nil {
		return nil, err
	}
	r.pool.Push(base)

	critExtra, err := r.rollCritExtra(formula, args.critOverride)
	if err != nil {
		return nil, err
	}

	context := args.context
	if context == "" {
		context = args.part.Context
	}

	labels := roll.PlaceLabels(&roll.LabelInput{
		Title:                     item.Name,
		Context:                   context,
		DamageType:                args.part.Type,
		TitlePlacement:            r.snap.TitlePlacement,
		DamageTypePlacement:       r.snap.DamageTypePlacement,
		ContextPlacement:          r.snap.ContextPlacement,
		ContextReplacesTitle:      r.snap.ContextReplacesTitle,
		ContextReplacesDamageType: r.snap.ContextReplacesDamageType,
	})

	return &host.Entry{
		Kind: host.EntryDamage,
		Damage: &host.DamageEntry{
			Base:       base,
			CritExtra:  critExtra,
			Formula:    formula.String(),
			DamageType: args.part.Type,
			Labels:     labels,
			Min:        formula.Min(),
			Max:        formula.Max(),
		},
	}, nil
}

// applyScaling grows the first damage slot's formula for cantrip and
// higher-slot casting
func (r *Request) applyScaling(item *vtt.Item, index int32, formula *roll.Formula) (*roll.Formula, error) {
	if index != 0 || item.Type != vtt.ItemTypeSpell {
		return formula, nil
	}

	switch item.ScalingMode {
	case vtt.ScalingModeCantrip:
		if !item.IsCantrip() || item.ScalingFormula == "" {
			return formula, nil
		}
		times := (r.actor.Level + 1) / cantripScaleBracket
		if times <= 0 {
			return formula, nil
		}
		scale, err := roll.ParseFormula(item.ScalingFormula)
		if err != nil {
			return nil, err
		}
		return formula.Append(scale, times), nil

	case vtt.ScalingModeSlot:
		if item.SpellLevel == 0 || r.castLevel <= item.SpellLevel || item.ScalingFormula == "" {
			return formula, nil
		}
		scale, err := roll.ParseFormula(item.ScalingFormula)
		if err != nil {
			return nil, err
		}
		return formula.Append(scale, r.castLevel-item.SpellLevel), nil

	default:
		return formula, nil
	}
}

// rollCritExtra decides whether this damage roll gets a critical extra
// and delegates its construction to the configured behavior
func (r *Request) rollCritExtra(formula *roll.Formula, critOverride string) (*roll.Result, error) {
	shouldCrit := critOverride == vtt.CritOverrideAlways ||
		(r.crit && critOverride != vtt.CritOverrideNever)
	if !shouldCrit || r.snap.CritBehavior == settings.CritBehaviorNone {
		return nil, nil
	}

	extra, err := roll.BuildCritExtra(r.o.roller, formula.String(), r.snap.CritBehavior)
	if err != nil {
		return nil, err
	}
	if extra == nil {
		return nil, nil
	}

	// Raw-max extras contain no rolled dice and stay out of the pool
	if len(extra.Groups) > 0 {
		r.pool.Push(extra)
	}
	return extra, nil
}
