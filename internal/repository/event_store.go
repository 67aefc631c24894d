package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const eventKeyPrefix = "payment:event:"

type redisEventStore struct {
	client *redis.Client
}

// NewEventStore returns a redis-backed EventStore. SetNX gives the
// first-delivery check and the TTL bounds how much redeliver history is
// retained.
func NewEventStore(client *redis.Client) EventStore {
	return &redisEventStore{client: client}
}

func (s *redisEventStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, eventKeyPrefix+eventID, 1, ttl).Result()
}
