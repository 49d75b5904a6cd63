package host

import (
	"context"
)

// AutoPrompter answers slot prompts without user interaction, always
// casting at the base level. Used by the CLI and as a server default when
// no interactive dialog channel is attached.
type AutoPrompter struct {
	// ConsumeSlot controls whether the auto-answer consumes a spell slot
	ConsumeSlot bool
}

// PromptSlotLevel returns the base level selection
func (p *AutoPrompter) PromptSlotLevel(_ context.Context, input *SlotPromptInput) (*SlotPromptResult, error) {
	return &SlotPromptResult{
		SlotLevel:   input.BaseLevel,
		ConsumeSlot: p.ConsumeSlot,
	}, nil
}

var _ Prompter = (*AutoPrompter)(nil)
