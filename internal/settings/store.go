package settings

import (
	"context"

	"github.com/caarlos0/env/v11"
)

// EnvStore captures snapshots from process environment variables
type EnvStore struct{}

// NewEnvStore creates a settings store backed by the environment
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// Capture parses the ROLL_* environment variables into a snapshot
func (s *EnvStore) Capture(_ context.Context) (*Snapshot, error) {
	var snap Snapshot
	if err := env.Parse(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// StaticStore returns a fixed snapshot; used in tests and the CLI
type StaticStore struct {
	Snap Snapshot
}

// NewStaticStore creates a store that always returns the given snapshot
func NewStaticStore(snap Snapshot) *StaticStore {
	return &StaticStore{Snap: snap}
}

// Capture returns a copy of the configured snapshot
func (s *StaticStore) Capture(_ context.Context) (*Snapshot, error) {
	snap := s.Snap
	return &snap, nil
}

// Defaults returns the snapshot produced when no keys are customized
func Defaults() Snapshot {
	return Snapshot{
		TitlePlacement:      PlacementSlot1,
		DamageTypePlacement: PlacementSlot2,
		ContextPlacement:    PlacementSlot2,
		CritString:          "Critical Hit!",
		CritBehavior:        CritBehaviorDouble,
		D20Mode:             D20ModeNormal,
		EnableSounds:        true,
		DiceSound:           "sounds/dice.wav",
	}
}

var (
	_ Store = (*EnvStore)(nil)
	_ Store = (*StaticStore)(nil)
)
