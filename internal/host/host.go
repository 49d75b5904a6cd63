// Package host defines the contracts of the virtual tabletop host that the
// roll engine collaborates with: rendering, chat delivery, dialogs,
// linked-resource consumption, template placement and item deletion.
// Implementations live in subpackages; the orchestrator only sees these
// interfaces.
package host

import (
	"context"

	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
)

//go:generate mockgen -destination=mock/mock_host.go -package=hostmock github.com/KirkDiggler/roll-api/internal/host Renderer,ChatTransport,Prompter,ResourceConsumer,TemplatePlacer,ItemDeleter

// CardContext identifies the speaker and item a card is rendered for
type CardContext struct {
	SpeakerID   string
	SpeakerName string
	ItemID      string
	ItemName    string
}

// Renderer turns entries into markup. Rendering itself is host territory;
// the engine only produces the ordered entry list.
type Renderer interface {
	RenderEntry(ctx context.Context, entry *Entry) (string, error)
	RenderCard(ctx context.Context, card *CardContext, markup []string) (string, error)
}

// ChatMessage is the payload handed to the chat transport
type ChatMessage struct {
	SpeakerID   string
	SpeakerName string
	Content     string

	// HasDice signals the "uses dice" message type to the host
	HasDice bool

	Whisper []string
	Sound   string
}

// ChatTransport delivers rendered cards. Fire and forget: the engine does
// not await delivery confirmation beyond the call completing.
type ChatTransport interface {
	CreateMessage(ctx context.Context, msg *ChatMessage) error
}

// SlotPromptInput asks the user which slot level to cast a spell at
type SlotPromptInput struct {
	ItemName  string
	BaseLevel int32
	MaxLevel  int32
}

// SlotPromptResult is the user's slot selection
type SlotPromptResult struct {
	SlotLevel   int32
	ConsumeSlot bool
}

// Prompter runs host dialogs. A dismissed dialog returns a Canceled error.
type Prompter interface {
	PromptSlotLevel(ctx context.Context, input *SlotPromptInput) (*SlotPromptResult, error)
}

// ResourceConsumer checks and consumes an item's linked resource. When it
// allows the consumption it also performs the resource mutation.
type ResourceConsumer interface {
	TryConsumeLinkedResource(ctx context.Context, item *vtt.Item) (bool, error)
}

// TemplatePlacer places an area-of-effect template on the map overlay
type TemplatePlacer interface {
	PlaceAreaTemplate(ctx context.Context, item *vtt.Item) error
}

// ItemDeleter removes an item document after a Destroy outcome
type ItemDeleter interface {
	DeleteItem(ctx context.Context, itemID string) error
}
