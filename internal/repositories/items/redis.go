package items

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
	"github.com/KirkDiggler/roll-api/internal/errors"
	redisclient "github.com/KirkDiggler/roll-api/internal/redis"
)

const (
	// Key pattern: item:{id}
	itemKeyPrefix = "item:"

	errItemNil     = "item cannot be nil"
	errItemIDEmpty = "item ID cannot be empty"
)

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

// NewRedisRepository creates a new Redis repository for item documents
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get retrieves an item by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	itemJSON, err := r.client.Get(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item not found: %s", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get item from Redis")
	}

	var item vtt.Item
	if err := json.Unmarshal([]byte(itemJSON), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item")
	}

	return &GetOutput{Item: &item}, nil
}

// Save stores or replaces an item document
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	itemJSON, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item")
	}

	if err := r.client.Set(ctx, r.buildKey(input.Item.ID), itemJSON, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store item in Redis")
	}

	return &SaveOutput{Item: input.Item}, nil
}

// Delete removes an item document
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	if err := r.client.Del(ctx, r.buildKey(input.ID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item from Redis")
	}

	return &DeleteOutput{}, nil
}

// UpdateCounters applies a merged counter mutation as one write
func (r *redisRepository) UpdateCounters(ctx context.Context, input UpdateCountersInput) (*UpdateCountersOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput{ID: input.ItemID})
	if err != nil {
		return nil, err
	}
	item := getOutput.Item

	if input.Uses != nil {
		item.Uses.Value = *input.Uses
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.RechargeCharged != nil {
		item.Recharge.Charged = *input.RechargeCharged
	}

	if _, err := r.Save(ctx, SaveInput{Item: item}); err != nil {
		return nil, errors.Wrapf(err, "failed to update counters for item %s", input.ItemID)
	}

	return &UpdateCountersOutput{Item: item}, nil
}

// buildKey creates the Redis key for an item document
func (r *redisRepository) buildKey(id string) string {
	return fmt.Sprintf("%s%s", itemKeyPrefix, id)
}
