package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"streamhub/infrastructure/logger"
)

// NewCache connects to Redis and verifies the connection with a ping.
func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Error("redis: ping failed")
		return nil, err
	}
	return client, nil
}
