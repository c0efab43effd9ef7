package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLArticles = 30 * time.Second // article lists (frequently refreshed)
	TTLArticle  = 2 * time.Minute  // single article
	TTLUser     = 5 * time.Minute  // user profiles
	TTLDefault  = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixArticle  = "article:"
	PrefixArticles = "articles:"
	PrefixUser     = "user:"
)

// Service Redis cache service interface
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Article cache
	GetArticles(ctx context.Context, siteID string, page, limit int) ([]byte, error)
	SetArticles(ctx context.Context, siteID string, page, limit int, data interface{}) error
	InvalidateArticles(ctx context.Context, siteID string) error

	// User cache
	GetUser(ctx context.Context, userID string) ([]byte, error)
	SetUser(ctx context.Context, userID string, data interface{}) error
	InvalidateUser(ctx context.Context, userID string) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
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
		return nil // no redis, skip silently
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (c *redisCache) GetArticles(ctx context.Context, siteID string, page, limit int) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	key := articlesKey(siteID, page, limit)
	return c.client.Get(ctx, key).Bytes()
}

func (c *redisCache) SetArticles(ctx context.Context, siteID string, page, limit int, data interface{}) error {
	key := articlesKey(siteID, page, limit)
	return c.Set(ctx, key, data, TTLArticles)
}

// InvalidateArticles removes all cached article pages for a site
func (c *redisCache) InvalidateArticles(ctx context.Context, siteID string) error {
	if c.client == nil {
		return nil
	}
	pattern := PrefixArticles + siteID + ":*"
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.Delete(ctx, keys...)
}

func (c *redisCache) GetUser(ctx context.Context, userID string) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, PrefixUser+userID).Bytes()
}

func (c *redisCache) SetUser(ctx context.Context, userID string, data interface{}) error {
	return c.Set(ctx, PrefixUser+userID, data, TTLUser)
}

func (c *redisCache) InvalidateUser(ctx context.Context, userID string) error {
	return c.Delete(ctx, PrefixUser+userID)
}

func articlesKey(siteID string, page, limit int) string {
	return fmt.Sprintf("%s%s:%d:%d", PrefixArticles, siteID, page, limit)
}
