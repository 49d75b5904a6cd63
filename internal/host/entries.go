package host

import (
	"github.com/KirkDiggler/roll-api/internal/roll"
	"github.com/KirkDiggler/roll-api/internal/settings"
)

// EntryKind tags a renderable card entry
type EntryKind string

// Entry kinds, in the order a typical card produces them
const (
	EntryHeader      EntryKind = "header"
	EntryMultiRoll   EntryKind = "multiroll"
	EntryDamage      EntryKind = "damage"
	EntryButton      EntryKind = "button"
	EntryDescription EntryKind = "description"
	EntryHTML        EntryKind = "html"
)

// HeaderEntry is the card header
type HeaderEntry struct {
	Title    string
	Subtitle string
}

// DamageEntry is a rendered damage roll: the base roll, the optional
// critical extra, and the label placement computed for it
type DamageEntry struct {
	Base      *roll.Result
	CritExtra *roll.Result

	Formula    string
	DamageType string

	// Labels maps display slots to their joined strings
	Labels map[settings.Placement]string

	Min int32
	Max int32
}

// ButtonEntry is a clickable save button
type ButtonEntry struct {
	Ability string
	DC      int32
	HideDC  bool
}

// Entry is one renderable card entry. Exactly one payload field matching
// Kind is set.
type Entry struct {
	Kind EntryKind

	Header    *HeaderEntry
	MultiRoll *roll.MultiRoll
	Damage    *DamageEntry
	Button    *ButtonEntry

	// Text carries description and html payloads
	Text string
}
