package actors

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
	"github.com/KirkDiggler/roll-api/internal/errors"
	redisclient "github.com/KirkDiggler/roll-api/internal/redis"
)

// Key pattern: actor:{id}
const actorKeyPrefix = "actor:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for actor documents
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get retrieves an actor by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("actor ID cannot be empty")
	}

	actorJSON, err := r.client.Get(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor not found: %s", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get actor from Redis")
	}

	var actor vtt.Actor
	if err := json.Unmarshal([]byte(actorJSON), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor")
	}

	return &GetOutput{Actor: &actor}, nil
}

// Save stores or replaces an actor document
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument("actor cannot be nil")
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument("actor ID cannot be empty")
	}

	actorJSON, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	if err := r.client.Set(ctx, r.buildKey(input.Actor.ID), actorJSON, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store actor in Redis")
	}

	return &SaveOutput{Actor: input.Actor}, nil
}

// UpdateSlots writes the remaining slot count for a level as one update
func (r *redisRepository) UpdateSlots(ctx context.Context, input UpdateSlotsInput) (*UpdateSlotsOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID cannot be empty")
	}
	if input.Level <= 0 {
		return nil, errors.InvalidArgument("slot level must be positive")
	}
	if input.Remaining < 0 {
		return nil, errors.InvalidArgument("remaining slots cannot be negative")
	}

	getOutput, err := r.Get(ctx, GetInput{ID: input.ActorID})
	if err != nil {
		return nil, err
	}
	actor := getOutput.Actor

	if actor.SpellSlots == nil {
		actor.SpellSlots = make(map[int32]int32)
	}
	actor.SpellSlots[input.Level] = input.Remaining

	if _, err := r.Save(ctx, SaveInput{Actor: actor}); err != nil {
		return nil, errors.Wrapf(err, "failed to update slots for actor %s", input.ActorID)
	}

	return &UpdateSlotsOutput{Actor: actor}, nil
}

// buildKey creates the Redis key for an actor document
func (r *redisRepository) buildKey(id string) string {
	return fmt.Sprintf("%s%s", actorKeyPrefix, id)
}
