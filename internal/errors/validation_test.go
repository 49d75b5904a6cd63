package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/roll-api/internal/errors"
)

func TestValidationBuilder_Empty(t *testing.T) {
	err := errors.NewValidationBuilder().Build()
	assert.NoError(t, err)
}

func TestValidationBuilder_RequiredFields(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("ItemRepo").
		RequiredField("Renderer").
		Build()

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	require.NotNil(t, meta)

	fields, ok := meta["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "ItemRepo")
	assert.Contains(t, fields, "Renderer")
}

func TestValidationBuilder_InvalidField(t *testing.T) {
	err := errors.NewValidationBuilder().
		InvalidField("SlotLevel", "must not exceed 9").
		Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SlotLevel")
	assert.Contains(t, err.Error(), "must not exceed 9")
}
