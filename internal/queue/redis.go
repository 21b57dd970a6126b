package queue

import (
	"context"
	"fmt"

	"catalog/sitegen/internal/domain/event"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

type Queue interface {
	AddEvent(ctx context.Context, event event.Event) (string, error) // Returns message ID
}

type RedisQueue struct {
	redisClient  *redis.Client
	streamPrefix string
}

// NewRedisQueue publishes events to streams named streamPrefix + event type.
func NewRedisQueue(redisClient *redis.Client, streamPrefix string) *RedisQueue {
	return &RedisQueue{
		redisClient:  redisClient,
		streamPrefix: streamPrefix,
	}
}

// StreamName returns the stream events of the given type are added to.
func (q *RedisQueue) StreamName(eventType string) string {
	return q.streamPrefix + eventType
}

func (q *RedisQueue) AddEvent(ctx context.Context, event event.Event) (string, error) {
	// Get event type to determine stream name
	eventType := event.EventType()
	streamName := q.StreamName(eventType)

	eventValue, err := event.EventValue()
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}

	// Fields: event_type, event_data
	messageID, err := q.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: streamName,
		Values: map[string]interface{}{
			"event_type": eventType,
			"event_data": string(eventValue),
		},
	}).Result()

	if err != nil {
		return "", fmt.Errorf("failed to add event to Redis stream %s: %w", streamName, err)
	}

	log.Debugf("Added event %s to stream %s with message ID: %s", eventType, streamName, messageID)
	return messageID, nil
}
