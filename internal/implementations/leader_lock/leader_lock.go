package leaderlock

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/logging"
	"context"
	"time"

	"github.com/go-redis/redis/v9"
)

// Redis is a SET NX leader lock. The TTL bounds how long a crashed
// holder can block other instances.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
}

func NewRedis(redisClient *redis.Client, log logging.Logger) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Redis{redisClient: redisClient, log: log}
}

func (l *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	acquired, err := l.redisClient.SetNX(ctx, key, "locked", ttl).Result()
	if err != nil {
		l.log.Error(
			ctx,
			"Could not acquire leader lock due to Redis client error.",
			logging.Entry("key", key),
			logging.Entry("err", err),
		)
		return false, err
	}
	return acquired, nil
}

func (l *Redis) Release(ctx context.Context, key string) error {
	return l.redisClient.Del(ctx, key).Err()
}
