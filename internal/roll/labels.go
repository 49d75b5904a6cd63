package roll

import (
	"strings"

	"github.com/KirkDiggler/roll-api/internal/settings"
)

// LabelInput carries the strings and placement configuration for one roll
type LabelInput struct {
	Title      string
	Context    string
	DamageType string

	TitlePlacement      settings.Placement
	DamageTypePlacement settings.Placement
	ContextPlacement    settings.Placement

	ContextReplacesTitle      bool
	ContextReplacesDamageType bool
}

// PlaceLabels positions the title, damage type and context strings into
// display slots. When a "replaces" flag is set and the context shares the
// replaced category's slot, the category's own text is suppressed and
// "(context)" is appended to whatever occupies that slot.
func PlaceLabels(input *LabelInput) map[settings.Placement]string {
	slots := make(map[settings.Placement][]string)

	place := func(slot settings.Placement, text string) {
		if slot == settings.PlacementNone || text == "" {
			return
		}
		slots[slot] = append(slots[slot], text)
	}

	replaceTitle := input.ContextReplacesTitle &&
		input.Context != "" &&
		input.ContextPlacement == input.TitlePlacement
	replaceDamageType := input.ContextReplacesDamageType &&
		input.Context != "" &&
		input.ContextPlacement == input.DamageTypePlacement

	if !replaceTitle {
		place(input.TitlePlacement, input.Title)
	}
	if !replaceDamageType {
		place(input.DamageTypePlacement, input.DamageType)
	}

	switch {
	case replaceTitle || replaceDamageType:
		place(input.ContextPlacement, "("+input.Context+")")
	default:
		place(input.ContextPlacement, input.Context)
	}

	out := make(map[settings.Placement]string, len(slots))
	for slot, parts := range slots {
		out[slot] = strings.Join(parts, " ")
	}
	return out
}
