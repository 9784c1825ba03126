package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/infrastructure/logger"
)

const (
	channelProfileTTL = 5 * time.Minute
	channelStatsTTL   = 10 * time.Minute
)

// IViewCache fronts the expensive derived views. Misses and cache failures
// both report a miss; callers always fall back to the store.
type IViewCache interface {
	GetChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (dto.ChannelProfile, bool)
	SetChannelProfile(ctx context.Context, username string, viewer bson.ObjectID, profile dto.ChannelProfile)
	InvalidateChannelProfile(ctx context.Context, username string)
	GetChannelStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, bool)
	SetChannelStats(ctx context.Context, owner bson.ObjectID, stats dto.ChannelStats)
	InvalidateChannelStats(ctx context.Context, owner bson.ObjectID)
}

// ViewCache wraps a Redis client that may be nil when the cache is
// unavailable; every operation then degrades to a miss.
type ViewCache struct {
	client *redis.Client
}

func NewViewCache(client *redis.Client) IViewCache {
	return &ViewCache{client: client}
}

// Profiles for one channel live in a single hash keyed by username, one field
// per viewer. Subscribe/unsubscribe then invalidates every viewer's entry with
// one key deletion.
func profileKey(username string) string {
	return fmt.Sprintf("view:channel-profile:%s", username)
}

func statsKey(owner bson.ObjectID) string {
	return fmt.Sprintf("view:channel-stats:%s", owner.Hex())
}

func (c *ViewCache) GetChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (dto.ChannelProfile, bool) {
	if c.client == nil {
		return dto.ChannelProfile{}, false
	}
	raw, err := c.client.HGet(ctx, profileKey(username), viewer.Hex()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.GetLogger().WithField("error", err).Error("redis: hget key failed")
		}
		return dto.ChannelProfile{}, false
	}
	var profile dto.ChannelProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		logger.GetLogger().WithField("error", err).Error("redis: unmarshal cached view failed")
		return dto.ChannelProfile{}, false
	}
	return profile, true
}

func (c *ViewCache) SetChannelProfile(ctx context.Context, username string, viewer bson.ObjectID, profile dto.ChannelProfile) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("redis: marshal view failed")
		return
	}
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, profileKey(username), viewer.Hex(), raw)
	pipe.Expire(ctx, profileKey(username), channelProfileTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.GetLogger().WithField("error", err).Error("redis: set key failed")
	}
}

func (c *ViewCache) InvalidateChannelProfile(ctx context.Context, username string) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, profileKey(username)).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Error("redis: delete key failed")
	}
}

func (c *ViewCache) GetChannelStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, bool) {
	var stats dto.ChannelStats
	ok := c.get(ctx, statsKey(owner), &stats)
	return stats, ok
}

func (c *ViewCache) SetChannelStats(ctx context.Context, owner bson.ObjectID, stats dto.ChannelStats) {
	c.set(ctx, statsKey(owner), stats, channelStatsTTL)
}

func (c *ViewCache) InvalidateChannelStats(ctx context.Context, owner bson.ObjectID) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, statsKey(owner)).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Error("redis: delete key failed")
	}
}

func (c *ViewCache) get(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.GetLogger().WithField("error", err).Error("redis: get key failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.GetLogger().WithField("error", err).Error("redis: unmarshal cached view failed")
		return false
	}
	return true
}

func (c *ViewCache) set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("redis: marshal view failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Error("redis: set key failed")
	}
}
