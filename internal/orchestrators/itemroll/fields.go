package itemroll

import (
	"context"

	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
	"github.com/KirkDiggler/roll-api/internal/errors"
	"github.com/KirkDiggler/roll-api/internal/host"
	"github.com/KirkDiggler/roll-api/internal/roll"
)

// presetFields expands the request's numeric preset into a concrete field
// list from the item's quick flags. List order is render order.
func (r *Request) presetFields() []Field {
	q := r.item.Quick
	alt := r.input.Params.Preset == PresetAlt

	var fields []Field
	if q.Attack {
		fields = append(fields, Field{Kind: FieldAttack})
	}
	if q.Check {
		fields = append(fields, Field{Kind: FieldToolCheck, Tool: &ToolField{}})
	}
	if q.Damage {
		fields = append(fields, Field{Kind: FieldDamage, Damage: &DamageField{
			All:       true,
			Versatile: alt && q.Versatile,
		}})
	}
	if q.Save {
		fields = append(fields, Field{Kind: FieldSaveButton, Save: &SaveField{}})
	}
	if q.Other {
		fields = append(fields, Field{Kind: FieldOther})
	}
	if q.Description {
		fields = append(fields, Field{Kind: FieldDescription})
	}
	if q.Flavor {
		fields = append(fields, Field{Kind: FieldFlavor})
	}
	if q.Template {
		r.placeTemplate = true
	}
	return fields
}

// processField dispatches one field to its builder. The switch is
// exhaustive over FieldKind; unknown kinds are an error, not a skip.
func (r *Request) processField(ctx context.Context, field *Field) error {
	switch field.Kind {
	case FieldAttack:
		return r.processAttack()

	case FieldToolCheck:
		return r.processToolCheck(field)

	case FieldDamage:
		return r.processDamage(ctx, field)

	case FieldSaveButton:
		r.processSaveButton(field)
		return nil

	case FieldOther:
		return r.processOther()

	case FieldCustom:
		return r.processCustom(field)

	case FieldDescription:
		text := field.Text
		if text == "" {
			text = r.item.Description
		}
		if text != "" {
			r.entries = append(r.entries, host.Entry{Kind: host.EntryDescription, Text: text})
		}
		return nil

	case FieldFlavor:
		text := field.Text
		if text == "" {
			text = r.item.Flavor
		}
		if text != "" {
			r.entries = append(r.entries, host.Entry{Kind: host.EntryDescription, Text: text})
		}
		return nil

	case FieldCritExtra:
		return r.processCritExtra(ctx)

	default:
		return errors.InvalidArgumentf("unknown field kind: %s", field.Kind)
	}
}

// processAttack rolls the item's attack and propagates a crit. The crit
// accumulator only ever moves false -> true here.
func (r *Request) processAttack() error {
	input, err := r.attackRoll()
	if err != nil {
		return err
	}

	multi, err := roll.ConstructMultiRoll(r.o.roller, input, r.pool)
	if err != nil {
		return err
	}

	r.hasAttack = true
	if !r.crit {
		r.crit = multi.IsCrit
	}

	r.entries = append(r.entries, host.Entry{Kind: host.EntryMultiRoll, MultiRoll: multi})
	return nil
}

// processToolCheck rolls a tool/ability check.
//
// Note the crit flag is assigned, not OR-accumulated: this mirrors the
// host system's historical behavior, where a tool check after a critical
// attack can clear the request's crit state. See DESIGN.md.
func (r *Request) processToolCheck(field *Field) error {
	formula := r.item.ToolFormula
	if formula == "" {
		formula = "1d20"
	}

	triggersCrit := field.Tool != nil && field.Tool.TriggersCrit

	multi, err := roll.ConstructMultiRoll(r.o.roller, &roll.MultiRollInput{
		Formula:          formula,
		Title:            "Check",
		State:            roll.ResolveState(r.input.Params.Advantage, r.input.Params.Disadvantage),
		RollType:         "check",
		CritThreshold:    r.item.CritThreshold,
		DefaultRollCount: r.snap.DefaultRollCount(),
	}, r.pool)
	if err != nil {
		return err
	}

	r.hasAttack = true
	r.crit = triggersCrit || multi.IsCrit

	r.entries = append(r.entries, host.Entry{Kind: host.EntryMultiRoll, MultiRoll: multi})
	return nil
}

// processDamage handles a damage field, expanding index "all", rolling
// ammunition damage afterwards with the ammunition threaded as the active
// item context.
func (r *Request) processDamage(ctx context.Context, field *Field) error {
	df := field.Damage
	if df == nil {
		df = &DamageField{All: true}
	}

	versatile := df.Versatile || r.input.Params.Versatile

	if df.All {
		for i := range r.item.Damage {
			// Versatile replacement applies only to the first sub-roll
			args := &damageArgs{
				activeItem:   r.item,
				part:         r.item.Damage[i],
				index:        int32(i),
				versatile:    versatile && i == 0,
				critOverride: df.CritOverride,
				context:      df.Context,
			}
			if err := r.appendDamage(args); err != nil {
				return err
			}
		}
	} else {
		if int(df.Index) >= len(r.item.Damage) {
			return errors.InvalidArgumentf("damage index %d out of range", df.Index)
		}
		args := &damageArgs{
			activeItem:   r.item,
			part:         r.item.Damage[df.Index],
			index:        df.Index,
			versatile:    versatile,
			critOverride: df.CritOverride,
			context:      df.Context,
		}
		if err := r.appendDamage(args); err != nil {
			return err
		}
	}

	r.rollAmmoDamage(ctx, df.CritOverride)
	return nil
}

// rollAmmoDamage rolls the consumed ammunition's own damage after the
// parent item's damage. The ammunition is threaded as the active item so
// no shared state is swapped and restored.
func (r *Request) rollAmmoDamage(_ context.Context, critOverride string) {
	if r.ammo == nil || r.ammoRolled {
		return
	}
	r.ammoRolled = true

	for i := range r.ammo.Damage {
		args := &damageArgs{
			activeItem:   r.ammo,
			part:         r.ammo.Damage[i],
			index:        int32(i),
			critOverride: critOverride,
			context:      r.ammo.Name,
		}
		if err := r.appendDamage(args); err != nil {
			// Ammunition damage is best effort; a malformed formula on
			// the ammo item must not abort the parent roll
			continue
		}
	}
}

// appendDamage runs the damage builder and appends the entry unless the
// formula slot was empty
func (r *Request) appendDamage(args *damageArgs) error {
	entry, err := r.rollDamage(args)
	if err != nil {
		return err
	}
	if entry == nil {
		return nil
	}
	r.hasDamage = true
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *Request) processSaveButton(field *Field) {
	ability := r.item.SaveAbility
	dc := r.item.SaveDC
	if field.Save != nil {
		if field.Save.Ability != "" {
			ability = field.Save.Ability
		}
		if field.Save.DC > 0 {
			dc = field.Save.DC
		}
	}
	if ability == "" {
		return
	}

	r.entries = append(r.entries, host.Entry{Kind: host.EntryButton, Button: &host.ButtonEntry{
		Ability: ability,
		DC:      dc,
		HideDC:  r.snap.HideDC,
	}})
}

// processOther rolls the item's utility formula once; it never affects
// the crit accumulator
func (r *Request) processOther() error {
	if r.item.OtherFormula == "" {
		return nil
	}

	multi, err := roll.ConstructMultiRoll(r.o.roller, &roll.MultiRollInput{
		Formula:  r.item.OtherFormula,
		Title:    "Other",
		RollType: "other",
		NumRolls: 1,
	}, r.pool)
	if err != nil {
		return err
	}

	r.entries = append(r.entries, host.Entry{Kind: host.EntryMultiRoll, MultiRoll: multi})
	return nil
}

func (r *Request) processCustom(field *Field) error {
	if field.Custom == nil || field.Custom.Formula == "" {
		return errors.InvalidArgument("custom field requires a formula")
	}

	multi, err := roll.ConstructMultiRoll(r.o.roller, &roll.MultiRollInput{
		Formula:          field.Custom.Formula,
		Title:            field.Custom.Title,
		State:            field.Custom.State,
		RollType:         "custom",
		NumRolls:         field.Custom.Rolls,
		DefaultRollCount: r.snap.DefaultRollCount(),
	}, r.pool)
	if err != nil {
		return err
	}

	r.entries = append(r.entries, host.Entry{Kind: host.EntryMultiRoll, MultiRoll: multi})
	return nil
}

// processCritExtra rolls the item's secondary critical damage slot. The
// roll itself never doubles again.
func (r *Request) processCritExtra(_ context.Context) error {
	if r.item.CritExtraDamage == "" {
		return nil
	}

	args := &damageArgs{
		activeItem:   r.item,
		part:         vtt.DamagePart{Formula: r.item.CritExtraDamage, Context: "Crit Extra"},
		index:        critExtraIndex,
		critOverride: vtt.CritOverrideNever,
	}
	return r.appendDamage(args)
}
