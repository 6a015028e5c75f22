package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trogers1052/supershares/internal/models"
)

const seriesKeyPrefix = "supershares:series:"

// RedisCache shares fetched series between processes
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// ConnectRedis opens a client and verifies it with a ping
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	log.Printf("Connected to Redis at %s", addr)
	return client, nil
}

// NewRedisCache creates a series cache whose entries expire after ttl
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// GetSeries returns the cached series for key, reporting whether it was present
func (r *RedisCache) GetSeries(ctx context.Context, key string) ([]models.Bar, bool, error) {
	val, err := r.client.Get(ctx, seriesKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get series: %w", err)
	}

	var bars []models.Bar
	if err := json.Unmarshal(val, &bars); err != nil {
		return nil, false, fmt.Errorf("failed to decode series: %w", err)
	}
	return bars, true, nil
}

// SetSeries stores bars under key
func (r *RedisCache) SetSeries(ctx context.Context, key string, bars []models.Bar) error {
	data, err := json.Marshal(bars)
	if err != nil {
		return fmt.Errorf("failed to encode series: %w", err)
	}
	if err := r.client.Set(ctx, seriesKeyPrefix+key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set series: %w", err)
	}
	return nil
}
