// Package vtt implements the virtual tabletop item and actor entities
package vtt

// Item type constants
const (
	ItemTypeWeapon     = "weapon"
	ItemTypeSpell      = "spell"
	ItemTypeTool       = "tool"
	ItemTypeFeature    = "feature"
	ItemTypeConsumable = "consumable"
	ItemTypeAmmo       = "ammo"
)

// Action type constants, used to match actor-level situational damage bonuses
const (
	ActionMeleeWeapon   = "mwak"
	ActionRangedWeapon  = "rwak"
	ActionMeleeSpell    = "msak"
	ActionRangedSpell   = "rsak"
	ActionSave          = "save"
	ActionAbilityCheck  = "abil"
	ActionUtility       = "util"
)

// Spell scaling modes
const (
	ScalingModeNone    = "none"
	ScalingModeCantrip = "cantrip"
	ScalingModeSlot    = "slot"
)

// Crit override values carried by damage fields
const (
	CritOverrideAlways = "always"
	CritOverrideNever  = "never"
)

// Item represents a rollable virtual tabletop item (weapon, spell, tool,
// feature or consumable).
// NOTE: This is a data-only struct. All roll composition, crit propagation
// and resource bookkeeping are done by the itemroll orchestrator, not here.
type Item struct {
	ID      string `yaml:"id" json:"id"`
	OwnerID string `yaml:"owner_id" json:"owner_id"`
	Name    string `yaml:"name" json:"name"`
	Type    string `yaml:"type" json:"type"`

	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Flavor      string `yaml:"flavor,omitempty" json:"flavor,omitempty"`

	// Attack / check data
	ActionType    string `yaml:"action_type,omitempty" json:"action_type,omitempty"`
	AttackBonus   string `yaml:"attack_bonus,omitempty" json:"attack_bonus,omitempty"`
	CritThreshold int32  `yaml:"crit_threshold,omitempty" json:"crit_threshold,omitempty"` // 0 means the default of 20
	ToolFormula   string `yaml:"tool_formula,omitempty" json:"tool_formula,omitempty"`

	// Damage data
	Damage          []DamagePart `yaml:"damage,omitempty" json:"damage,omitempty"`
	Versatile       string       `yaml:"versatile,omitempty" json:"versatile,omitempty"`
	CritExtraDamage string       `yaml:"crit_extra_damage,omitempty" json:"crit_extra_damage,omitempty"`

	// Save data
	SaveAbility string `yaml:"save_ability,omitempty" json:"save_ability,omitempty"`
	SaveDC      int32  `yaml:"save_dc,omitempty" json:"save_dc,omitempty"`

	// Utility formula rolled by the "other" field
	OtherFormula string `yaml:"other_formula,omitempty" json:"other_formula,omitempty"`

	// Spell data
	SpellLevel     int32  `yaml:"spell_level,omitempty" json:"spell_level,omitempty"`
	ScalingMode    string `yaml:"scaling_mode,omitempty" json:"scaling_mode,omitempty"`
	ScalingFormula string `yaml:"scaling_formula,omitempty" json:"scaling_formula,omitempty"`

	// AoE template shape; empty means the item has no area of effect
	AreaTemplate string `yaml:"area_template,omitempty" json:"area_template,omitempty"`

	// Ammunition item consumed when this weapon attacks
	AmmoID string `yaml:"ammo_id,omitempty" json:"ammo_id,omitempty"`

	// Quick roll defaults
	Quick QuickFlags `yaml:"quick" json:"quick"`

	// Consumption counters
	Uses            Uses          `yaml:"uses" json:"uses"`
	Quantity        int32         `yaml:"quantity,omitempty" json:"quantity,omitempty"`
	ConsumeQuantity bool          `yaml:"consume_quantity,omitempty" json:"consume_quantity,omitempty"`
	AutoDestroy     bool          `yaml:"auto_destroy,omitempty" json:"auto_destroy,omitempty"`
	Recharge        Recharge      `yaml:"recharge" json:"recharge"`
	Consume         ConsumeTarget `yaml:"consume" json:"consume"`
}

// DamagePart is one entry in an item's ordered damage formula list
type DamagePart struct {
	Formula string `yaml:"formula" json:"formula"`
	Type    string `yaml:"type,omitempty" json:"type,omitempty"`
	Context string `yaml:"context,omitempty" json:"context,omitempty"`
}

// QuickFlags stores the per-item default behavior used to expand a numeric
// roll preset into a concrete field list
type QuickFlags struct {
	Attack      bool `yaml:"attack,omitempty" json:"attack,omitempty"`
	Check       bool `yaml:"check,omitempty" json:"check,omitempty"`
	Damage      bool `yaml:"damage,omitempty" json:"damage,omitempty"`
	Versatile   bool `yaml:"versatile,omitempty" json:"versatile,omitempty"`
	Save        bool `yaml:"save,omitempty" json:"save,omitempty"`
	Other       bool `yaml:"other,omitempty" json:"other,omitempty"`
	Description bool `yaml:"description,omitempty" json:"description,omitempty"`
	Flavor      bool `yaml:"flavor,omitempty" json:"flavor,omitempty"`
	Template    bool `yaml:"template,omitempty" json:"template,omitempty"`
}

// Uses tracks limited item uses
type Uses struct {
	Value int32  `yaml:"value" json:"value"`
	Max   int32  `yaml:"max" json:"max"`
	Per   string `yaml:"per,omitempty" json:"per,omitempty"` // "day", "short_rest", "charges", ...
}

// Recharge tracks recharge-on-a-die items ("Recharge 5-6")
type Recharge struct {
	Formula string `yaml:"formula,omitempty" json:"formula,omitempty"`
	Charged bool   `yaml:"charged,omitempty" json:"charged,omitempty"`
}

// ConsumeTarget points at a linked resource consumed alongside the item
type ConsumeTarget struct {
	Type   string `yaml:"type,omitempty" json:"type,omitempty"` // "attribute", "ammo", "charges"
	Target string `yaml:"target,omitempty" json:"target,omitempty"`
	Amount int32  `yaml:"amount,omitempty" json:"amount,omitempty"`
}

// HasLimitedUses reports whether the item tracks a use counter
func (i *Item) HasLimitedUses() bool {
	return i.Uses.Max > 0 || i.Uses.Value > 0
}

// HasAreaTemplate reports whether the item declares an area of effect
func (i *Item) HasAreaTemplate() bool {
	return i.AreaTemplate != ""
}

// IsCantrip reports whether the item is a level-zero spell
func (i *Item) IsCantrip() bool {
	return i.Type == ItemTypeSpell && i.SpellLevel == 0
}
