package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvStore_Capture(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when nothing is set", func(t *testing.T) {
		snap, err := NewEnvStore().Capture(ctx)
		require.NoError(t, err)
		assert.Equal(t, Defaults(), *snap)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("ROLL_CRIT_BEHAVIOR", "raw_max")
		t.Setenv("ROLL_D20_MODE", "2")
		t.Setenv("ROLL_CONTEXT_REPLACES_TITLE", "true")
		t.Setenv("ROLL_ENABLE_SOUNDS", "false")

		snap, err := NewEnvStore().Capture(ctx)
		require.NoError(t, err)

		assert.Equal(t, CritBehaviorMax, snap.CritBehavior)
		assert.Equal(t, int32(2), snap.D20Mode)
		assert.True(t, snap.ContextReplacesTitle)
		assert.False(t, snap.EnableSounds)
	})
}

func TestStaticStore_Capture(t *testing.T) {
	store := NewStaticStore(Snapshot{CritString: "Crit!"})

	snap, err := store.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Crit!", snap.CritString)

	// Mutating the returned snapshot never leaks back into the store
	snap.CritString = "changed"
	again, err := store.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Crit!", again.CritString)
}

func TestSnapshot_DefaultRollCount(t *testing.T) {
	assert.Equal(t, int32(1), (&Snapshot{D20Mode: D20ModeNormal}).DefaultRollCount())
	assert.Equal(t, int32(2), (&Snapshot{D20Mode: D20ModePreferTwo}).DefaultRollCount())
	assert.Equal(t, int32(1), (&Snapshot{}).DefaultRollCount())
}
