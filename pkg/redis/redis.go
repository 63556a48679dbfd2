package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/config"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// ErrCacheMiss is returned when a key is absent from the cache
var ErrCacheMiss = redis.Nil

// Initialize connects the shared Redis client. The app degrades gracefully
// without Redis: callers treat a nil client as cache-off.
func Initialize(cfg config.RedisConfig) error {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client = nil
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis connected", map[string]interface{}{
		"addr": fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
	})
	return nil
}

func GetClient() *redis.Client {
	return client
}

func Close() {
	if client != nil {
		client.Close()
		client = nil
	}
}

const blacklistPrefix = "token:blacklist:"

// BlacklistToken marks a JWT as revoked until its natural expiry
func BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return client.Set(ctx, blacklistPrefix+token, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a JWT has been revoked. With Redis
// unavailable it answers false so logins keep working.
func IsTokenBlacklisted(ctx context.Context, token string) bool {
	if client == nil {
		return false
	}
	exists, err := client.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		logger.Warn("Blacklist check failed", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return exists > 0
}

// SetJSON caches a JSON-encoded value under key with a TTL
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, data, ttl).Err()
}

// GetJSON loads a cached JSON value into dest. Returns ErrCacheMiss when the
// key is absent or the cache is off.
func GetJSON(ctx context.Context, key string, dest interface{}) error {
	if client == nil {
		return ErrCacheMiss
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete removes cached keys, ignoring a cold cache
func Delete(ctx context.Context, keys ...string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
