package saveslot

import (
	"context"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/trivia-quest/internal/redis"
)

const (
	// Key pattern: save_slot:{key} holds a hash of payload and updated_at
	// KeyPrefix is exported for tooling that scans saves
	KeyPrefix = "save_slot:"

	fieldPayload   = "payload"
	fieldUpdatedAt = "updated_at"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a save repository backed by Redis
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get loads the payload hash for a key
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	fields, err := r.client.HMGet(ctx, KeyPrefix+input.Key, fieldPayload, fieldUpdatedAt).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("save not found")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read save from Redis")
	}

	payload, ok := fields[0].(string)
	if !ok || payload == "" {
		return nil, errors.NotFound("save not found")
	}

	output := &GetOutput{Payload: []byte(payload)}
	if raw, ok := fields[1].(string); ok {
		if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
			output.UpdatedAt = time.UnixMilli(millis).UTC()
		}
	}

	return output, nil
}

// Set overwrites the payload hash for a key. Saves never expire.
func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if err := validateSet(input); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	err := r.client.HSet(ctx, KeyPrefix+input.Key,
		fieldPayload, input.Payload,
		fieldUpdatedAt, strconv.FormatInt(now.UnixMilli(), 10),
	).Err()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to write save to Redis")
	}

	return &SetOutput{UpdatedAt: now}, nil
}
