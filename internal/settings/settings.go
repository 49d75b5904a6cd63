// Package settings provides the configuration snapshot consumed by roll
// composition. A snapshot is captured once per roll request and never
// mutated mid-request.
package settings

import "context"

//go:generate mockgen -destination=mock/mock_store.go -package=settingsmock github.com/KirkDiggler/roll-api/internal/settings Store

// Placement identifies the display slot a label category is rendered into
type Placement int32

// Placement slots
const (
	PlacementNone  Placement = 0
	PlacementSlot1 Placement = 1
	PlacementSlot2 Placement = 2
	PlacementSlot3 Placement = 3
)

// CritBehavior selects how the critical extra roll is constructed
type CritBehavior string

// Crit behaviors
const (
	// CritBehaviorNone disables critical extra rolls entirely
	CritBehaviorNone CritBehavior = "none"
	// CritBehaviorDouble rolls the damage dice a second time
	CritBehaviorDouble CritBehavior = "double"
	// CritBehaviorMaxPlusRoll adds the dice maximum to a fresh roll
	CritBehaviorMaxPlusRoll CritBehavior = "max_plus_roll"
	// CritBehaviorMax adds the dice maximum without rolling
	CritBehaviorMax CritBehavior = "raw_max"
)

// D20 modes: the default number of d20s rolled before advantage state is applied
const (
	D20ModeNormal    int32 = 1
	D20ModePreferTwo int32 = 2
)

// Snapshot is a read-only capture of the host settings store taken at
// request construction time
type Snapshot struct {
	TitlePlacement      Placement `env:"ROLL_TITLE_PLACEMENT" envDefault:"1"`
	DamageTypePlacement Placement `env:"ROLL_DAMAGE_TYPE_PLACEMENT" envDefault:"2"`
	ContextPlacement    Placement `env:"ROLL_CONTEXT_PLACEMENT" envDefault:"2"`

	ContextReplacesTitle      bool `env:"ROLL_CONTEXT_REPLACES_TITLE" envDefault:"false"`
	ContextReplacesDamageType bool `env:"ROLL_CONTEXT_REPLACES_DAMAGE_TYPE" envDefault:"false"`

	CritString   string       `env:"ROLL_CRIT_STRING" envDefault:"Critical Hit!"`
	CritBehavior CritBehavior `env:"ROLL_CRIT_BEHAVIOR" envDefault:"double"`

	D20Mode int32 `env:"ROLL_D20_MODE" envDefault:"1"`

	HideDC       bool `env:"ROLL_HIDE_DC" envDefault:"false"`
	EnableSounds bool `env:"ROLL_ENABLE_SOUNDS" envDefault:"true"`

	// Sound asset attached to chat payloads when sounds are enabled
	DiceSound string `env:"ROLL_DICE_SOUND" envDefault:"sounds/dice.wav"`
}

// DefaultRollCount returns the configured default die count for d20 rolls
func (s *Snapshot) DefaultRollCount() int32 {
	if s.D20Mode >= D20ModePreferTwo {
		return D20ModePreferTwo
	}
	return D20ModeNormal
}

// Store is the settings store collaborator. Capture reads the full key set
// once; callers treat the returned snapshot as immutable.
type Store interface {
	Capture(ctx context.Context) (*Snapshot, error)
}
