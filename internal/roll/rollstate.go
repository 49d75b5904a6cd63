package roll

// State is the advantage/disadvantage resolution outcome
type State string

// Roll states
const (
	// StateNone means no advantage or disadvantage applies
	StateNone State = ""
	// StateHighest keeps the highest of the rolled results
	StateHighest State = "highest"
	// StateLowest keeps the lowest of the rolled results
	StateLowest State = "lowest"
)

// ResolveState maps advantage and disadvantage counts to a roll state.
// Equal counts cancel out, including the zero/zero case.
func ResolveState(adv, disadv int32) State {
	switch {
	case adv > disadv:
		return StateHighest
	case disadv > adv:
		return StateLowest
	default:
		return StateNone
	}
}
