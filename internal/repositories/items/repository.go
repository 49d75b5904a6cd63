// Package items provides repository interface and types for item documents.
// The roll engine treats item counters (uses, quantity, recharge) as opaque
// host document fields; this repository is the single write path for them.
package items

import (
	"context"

	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=itemsmock github.com/KirkDiggler/roll-api/internal/repositories/items Repository

// GetInput contains parameters for retrieving an item
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved item
type GetOutput struct {
	Item *vtt.Item
}

// SaveInput contains parameters for storing an item
type SaveInput struct {
	Item *vtt.Item
}

// SaveOutput contains the result of storing an item
type SaveOutput struct {
	Item *vtt.Item
}

// DeleteInput contains parameters for deleting an item
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting an item
type DeleteOutput struct{}

// UpdateCountersInput is the merged counter mutation for a single roll
// request. Nil fields are left untouched; all set fields are written in
// one update.
type UpdateCountersInput struct {
	ItemID string

	Uses            *int32
	Quantity        *int32
	RechargeCharged *bool
}

// UpdateCountersOutput contains the item state after the update
type UpdateCountersOutput struct {
	Item *vtt.Item
}

// Repository defines the interface for item document storage
type Repository interface {
	// Get retrieves an item by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save stores or replaces an item document
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes an item document
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// UpdateCounters applies a merged counter mutation as one write
	UpdateCounters(ctx context.Context, input UpdateCountersInput) (*UpdateCountersOutput, error)
}
