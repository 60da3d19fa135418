// Package cache provides a Redis-backed cache for raw feed documents.
// Backfilling a full season refetches hundreds of scoreboard and
// play-by-play documents; caching them keeps reruns cheap and polite.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// FeedCache stores raw feed bodies keyed by their source URL
type FeedCache struct {
	client *redis.Client
}

// NewFeedCache creates a new Redis-backed feed cache
func NewFeedCache(redisURL string) (*FeedCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &FeedCache{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (fc *FeedCache) Close() error {
	return fc.client.Close()
}

// HealthCheck pings Redis to verify connection
func (fc *FeedCache) HealthCheck(ctx context.Context) error {
	return fc.client.Ping(ctx).Err()
}

// Get retrieves a cached document body by URL. Returns redis.Nil via the
// error when the document is not cached.
func (fc *FeedCache) Get(ctx context.Context, url string) ([]byte, error) {
	return fc.client.Get(ctx, key(url)).Bytes()
}

// Set stores a document body with a TTL
func (fc *FeedCache) Set(ctx context.Context, url string, body []byte, ttl time.Duration) error {
	return fc.client.Set(ctx, key(url), body, ttl).Err()
}

// Delete evicts cached documents
func (fc *FeedCache) Delete(ctx context.Context, urls ...string) error {
	keys := make([]string, len(urls))
	for i, u := range urls {
		keys[i] = key(u)
	}
	return fc.client.Del(ctx, keys...).Err()
}

func key(url string) string {
	return "boreas:feed:" + url
}
