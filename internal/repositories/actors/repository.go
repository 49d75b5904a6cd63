// Package actors provides repository interface and types for actor documents
package actors

import (
	"context"

	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=actorsmock github.com/KirkDiggler/roll-api/internal/repositories/actors Repository

// GetInput contains parameters for retrieving an actor
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved actor
type GetOutput struct {
	Actor *vtt.Actor
}

// SaveInput contains parameters for storing an actor
type SaveInput struct {
	Actor *vtt.Actor
}

// SaveOutput contains the result of storing an actor
type SaveOutput struct {
	Actor *vtt.Actor
}

// UpdateSlotsInput sets the remaining spell slot count for one level.
// The whole mutation for a roll lands in one write.
type UpdateSlotsInput struct {
	ActorID   string
	Level     int32
	Remaining int32
}

// UpdateSlotsOutput contains the actor state after the update
type UpdateSlotsOutput struct {
	Actor *vtt.Actor
}

// Repository defines the interface for actor document storage
type Repository interface {
	// Get retrieves an actor by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save stores or replaces an actor document
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// UpdateSlots writes the remaining slot count for a level as one update
	UpdateSlots(ctx context.Context, input UpdateSlotsInput) (*UpdateSlotsOutput, error)
}
