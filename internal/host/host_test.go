package host

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoPrompter(t *testing.T) {
	p := &AutoPrompter{ConsumeSlot: true}

	result, err := p.PromptSlotLevel(context.Background(), &SlotPromptInput{
		ItemName:  "Fireball",
		BaseLevel: 3,
		MaxLevel:  9,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), result.SlotLevel)
	assert.True(t, result.ConsumeSlot)
}

func TestConsoleTransport(t *testing.T) {
	var buf bytes.Buffer
	transport := &ConsoleTransport{Out: &buf}

	err := transport.CreateMessage(context.Background(), &ChatMessage{
		SpeakerName: "Kira",
		Content:     "<card/>",
	})
	require.NoError(t, err)
	assert.Equal(t, "[Kira]\n<card/>\n", buf.String())
}
