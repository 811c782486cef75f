package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ServedImageCache backs the recommendation service's fresh-candidate logic
// with a redis set per user+query. Membership and insertion happen in one
// SADD, so concurrent requests cannot both claim the same URL as fresh.
type ServedImageCache struct {
	rdb *redis.Client
}

func NewServedImageCache(rdb *redis.Client) *ServedImageCache {
	return &ServedImageCache{rdb: rdb}
}

func (c *ServedImageCache) MarkServed(ctx context.Context, key, imageURL string, ttl time.Duration) (bool, error) {
	added, err := c.rdb.SAdd(ctx, key, imageURL).Result()
	if err != nil {
		return false, err
	}
	if err := c.rdb.Expire(ctx, key, ttl).Err(); err != nil {
		return false, err
	}
	return added == 0, nil
}
