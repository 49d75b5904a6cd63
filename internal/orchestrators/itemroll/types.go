package itemroll

import (
	"github.com/KirkDiggler/roll-api/internal/host"
	"github.com/KirkDiggler/roll-api/internal/roll"
)

// Roll presets expandable from item quick flags
const (
	// PresetNone means the caller supplied an explicit field list
	PresetNone int32 = 0
	// PresetMain is the item's primary quick roll
	PresetMain int32 = 1
	// PresetAlt is the alternate quick roll (versatile weapons)
	PresetAlt int32 = 2
)

// FieldKind tags a requested field
type FieldKind string

// Field kinds
const (
	FieldAttack      FieldKind = "attack"
	FieldToolCheck   FieldKind = "tool_check"
	FieldDamage      FieldKind = "damage"
	FieldSaveButton  FieldKind = "save_button"
	FieldOther       FieldKind = "other"
	FieldCustom      FieldKind = "custom"
	FieldDescription FieldKind = "description"
	FieldFlavor      FieldKind = "flavor"
	FieldCritExtra   FieldKind = "crit_extra"
)

// DamageField selects a damage formula slot
type DamageField struct {
	// Index selects one entry of the item's damage list; ignored when All
	Index int32

	// All expands to one sub-roll per damage list entry
	All bool

	// Versatile substitutes the versatile formula
	Versatile bool

	// CritOverride is "", "always" or "never"
	CritOverride string

	// Context overrides the damage part's display context
	Context string
}

// SaveField configures a save button; zero values fall back to item data
type SaveField struct {
	Ability string
	DC      int32
}

// ToolField configures a tool check
type ToolField struct {
	// TriggersCrit forces the request crit flag on this check
	TriggersCrit bool
}

// CustomField is a caller-supplied formula roll
type CustomField struct {
	Title   string
	Formula string
	Rolls   int32
	State   roll.State
}

// Field is a tagged variant; exactly one payload matching Kind is set.
// Immutable once constructed; list order is render order.
type Field struct {
	Kind FieldKind

	Damage *DamageField
	Save   *SaveField
	Tool   *ToolField
	Custom *CustomField

	// Text overrides item description/flavor text
	Text string
}

// RollParams is the merged user/quick-roll parameter set of one request
type RollParams struct {
	Advantage    int32
	Disadvantage int32

	// ForceCrit marks the request critical before any field is processed
	ForceCrit bool

	// Preset expands to a field list from the item quick flags
	Preset int32

	// SlotLevel casts a leveled spell at this slot without prompting
	SlotLevel int32

	// ConsumeSlot consumes the selected spell slot (with SlotLevel)
	ConsumeSlot bool

	// Consume enables charge/resource consumption for this request
	Consume bool

	// PlaceTemplate places the item's area template before rendering
	PlaceTemplate bool

	// Versatile requests versatile damage substitution globally
	Versatile bool

	Whisper []string
}

// RollItemInput defines the request for rolling an item
type RollItemInput struct {
	ItemID  string
	OwnerID string
	Params  RollParams

	// Fields is the ordered field list; empty with a preset derives the
	// list from the item quick flags
	Fields []Field
}

// RollItemOutput defines the response for rolling an item
type RollItemOutput struct {
	// NoOp is true when the request had already been rolled
	NoOp bool

	Crit    bool
	Entries []host.Entry

	// Content is the final rendered card markup
	Content string

	// Destroyed reports that the item was auto-destroyed after the roll
	Destroyed bool

	// DiceRolled is the number of results pushed to the dice pool
	DiceRolled int
}

// ChargeRequest selects which depletion modes a request consumes
type ChargeRequest struct {
	Use      bool
	Quantity bool
	Resource bool
	Recharge bool
}

// Any reports whether any depletion mode is requested
func (r ChargeRequest) Any() bool {
	return r.Use || r.Quantity || r.Resource || r.Recharge
}

// ConsumeOutcome is the result of charge consumption
type ConsumeOutcome string

// Consumption outcomes
const (
	// ConsumeSuccess means counters were updated
	ConsumeSuccess ConsumeOutcome = "success"
	// ConsumeError means a precondition failed and nothing was mutated
	ConsumeError ConsumeOutcome = "error"
	// ConsumeDestroy means the item should be deleted after chat output
	ConsumeDestroy ConsumeOutcome = "destroy"
)
