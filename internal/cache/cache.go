package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/skypath/internal/models"
)

const keyPrefix = "skypath:search:"

// Cache stores unfiltered engine results per (origin, destination, date).
type Cache interface {
	Get(ctx context.Context, key models.SearchKey) ([]models.Itinerary, bool)
	Set(ctx context.Context, key models.SearchKey, itineraries []models.Itinerary) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr: "localhost:6379",
		DB:   0,
		TTL:  5 * time.Minute,
	}
}

// NewRedisCache connects and pings the server; an unreachable server is an
// error rather than a silently disabled cache.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, key models.SearchKey) ([]models.Itinerary, bool) {
	data, err := c.client.Get(ctx, generateKey(key)).Bytes()
	if err != nil {
		return nil, false
	}

	var itineraries []models.Itinerary
	if err := json.Unmarshal(data, &itineraries); err != nil {
		return nil, false
	}

	return itineraries, true
}

func (c *RedisCache) Set(ctx context.Context, key models.SearchKey, itineraries []models.Itinerary) error {
	data, err := json.Marshal(itineraries)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, generateKey(key), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, key models.SearchKey) ([]models.Itinerary, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, key models.SearchKey, itineraries []models.Itinerary) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func generateKey(key models.SearchKey) string {
	data, _ := json.Marshal(key)
	hash := sha256.Sum256(data)
	return keyPrefix + hex.EncodeToString(hash[:])
}
