package vtt

// Actor represents the owner of rollable items.
// NOTE: This is a data-only struct, mirroring the host document model.
type Actor struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`

	// Caster level, used for cantrip scaling
	Level int32 `yaml:"level" json:"level"`

	// Grants a third advantage die on attack rolls
	ElvenAccuracy bool `yaml:"elven_accuracy,omitempty" json:"elven_accuracy,omitempty"`

	// Situational damage bonus formulas keyed by action type ("mwak", "rsak", ...)
	DamageBonuses map[string]string `yaml:"damage_bonuses,omitempty" json:"damage_bonuses,omitempty"`

	// Spell slots remaining, keyed by slot level
	SpellSlots map[int32]int32 `yaml:"spell_slots,omitempty" json:"spell_slots,omitempty"`
}

// SpellSlotsRemaining returns how many slots of the given level the actor
// has left
func (a *Actor) SpellSlotsRemaining(level int32) int32 {
	if a == nil || a.SpellSlots == nil {
		return 0
	}
	return a.SpellSlots[level]
}

// DamageBonus returns the situational damage bonus formula for an action
// type, or the empty string when none applies
func (a *Actor) DamageBonus(actionType string) string {
	if a == nil || a.DamageBonuses == nil {
		return ""
	}
	return a.DamageBonuses[actionType]
}
