package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs. Identity data tolerates short staleness; unread counters and
// conversation lists are never cached (they must reflect committed state).
const (
	TTLProfile = 2 * time.Minute
	TTLListing = 1 * time.Minute
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixProfile = "profile:"
	PrefixListing = "listing:"
)

// Service Redis-backed JSON cache. All operations fail open when Redis
// is unavailable so the API keeps serving from the database.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	GetProfile(ctx context.Context, uid string, dest interface{}) error
	SetProfile(ctx context.Context, uid string, data interface{}) error
	InvalidateProfile(ctx context.Context, uid string) error

	GetListing(ctx context.Context, id int, dest interface{}) error
	SetListing(ctx context.Context, id int, data interface{}) error
	InvalidateListing(ctx context.Context, id int) error

	IsAvailable() bool
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service over the given client (may be nil)
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) profileKey(uid string) string {
	return PrefixProfile + uid
}

func (c *redisCache) GetProfile(ctx context.Context, uid string, dest interface{}) error {
	return c.Get(ctx, c.profileKey(uid), dest)
}

func (c *redisCache) SetProfile(ctx context.Context, uid string, data interface{}) error {
	return c.Set(ctx, c.profileKey(uid), data, TTLProfile)
}

func (c *redisCache) InvalidateProfile(ctx context.Context, uid string) error {
	return c.Delete(ctx, c.profileKey(uid))
}

func (c *redisCache) listingKey(id int) string {
	return fmt.Sprintf("%s%d", PrefixListing, id)
}

func (c *redisCache) GetListing(ctx context.Context, id int, dest interface{}) error {
	return c.Get(ctx, c.listingKey(id), dest)
}

func (c *redisCache) SetListing(ctx context.Context, id int, data interface{}) error {
	return c.Set(ctx, c.listingKey(id), data, TTLListing)
}

func (c *redisCache) InvalidateListing(ctx context.Context, id int) error {
	return c.Delete(ctx, c.listingKey(id))
}
