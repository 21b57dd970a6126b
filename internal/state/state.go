package state

import (
	"context"
	"errors"
	"fmt"

	"catalog/sitegen/internal/domain/event"

	"github.com/redis/go-redis/v9"
)

// StateManager keeps the event of the most recent successful run.
type StateManager interface {
	GetLastRun(ctx context.Context) (*event.SiteGeneratedEvent, error)
	SetLastRun(ctx context.Context, run *event.SiteGeneratedEvent) error
}

type redisStateManager struct {
	redisClient *redis.Client
	key         string
}

func NewRedisStateManager(redisClient *redis.Client) StateManager {
	return &redisStateManager{
		redisClient: redisClient,
		key:         "catalog:state:last_run",
	}
}

// GetLastRun returns the previous run, or nil if none was recorded.
func (s *redisStateManager) GetLastRun(ctx context.Context) (*event.SiteGeneratedEvent, error) {
	val, err := s.redisClient.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // No run recorded yet
		}
		return nil, fmt.Errorf("failed to get last run: %w", err)
	}

	run, err := event.Decode[*event.SiteGeneratedEvent](val)
	if err != nil {
		return nil, fmt.Errorf("failed to read last run: %w", err)
	}
	return run, nil
}

// SetLastRun stores the run's event payload, the same bytes that go to the
// event stream.
func (s *redisStateManager) SetLastRun(ctx context.Context, run *event.SiteGeneratedEvent) error {
	data, err := run.EventValue()
	if err != nil {
		return fmt.Errorf("failed to encode run %s: %w", run.RunID, err)
	}

	err = s.redisClient.Set(ctx, s.key, data, 0).Err() // No expiration
	if err != nil {
		return fmt.Errorf("failed to set last run %s: %w", run.RunID, err)
	}
	return nil
}
