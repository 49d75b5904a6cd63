package host

import (
	"context"
	"fmt"
	"io"
)

// ConsoleTransport writes rendered cards to a writer. Used by the one-shot
// CLI roll command.
type ConsoleTransport struct {
	Out io.Writer
}

// CreateMessage prints the card content
func (t *ConsoleTransport) CreateMessage(_ context.Context, msg *ChatMessage) error {
	_, err := fmt.Fprintf(t.Out, "[%s]\n%s\n", msg.SpeakerName, msg.Content)
	return err
}

var _ ChatTransport = (*ConsoleTransport)(nil)
