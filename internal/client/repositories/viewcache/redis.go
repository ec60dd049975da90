package viewcache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/uniswap/internal/common"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces every key the cache writes.
const DefaultRedisPrefix = "uniswap:cache"

var _ Cache = (*RedisCache)(nil)

// RedisCache stores each entry under <prefix>:<uid>:<ns>:<sub>. A per-user
// set tracks that user's keys and <prefix>:users tracks the owners, so a
// purge never needs KEYS or SCAN.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisCache(client redis.UniversalClient, prefix string) *RedisCache {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) entryKey(ns Namespace, userID int64, subKey string) string {
	return fmt.Sprintf("%s:%d:%s:%s", c.prefix, userID, ns, subKey)
}

func (c *RedisCache) userKeysKey(userID int64) string {
	return fmt.Sprintf("%s:%d:keys", c.prefix, userID)
}

func (c *RedisCache) usersKey() string {
	return c.prefix + ":users"
}

func (c *RedisCache) Put(ctx context.Context, ns Namespace, userID int64, subKey string, value []byte) error {
	key := c.entryKey(ns, userID, subKey)
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, key, value, 0)
		p.SAdd(ctx, c.userKeysKey(userID), key)
		p.SAdd(ctx, c.usersKey(), strconv.FormatInt(userID, 10))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to put cache[%d/%s/%s]: %w", userID, ns, subKey, err)
	}
	return nil
}

func (c *RedisCache) Get(ctx context.Context, ns Namespace, userID int64, subKey string) ([]byte, error) {
	b, err := c.client.Get(ctx, c.entryKey(ns, userID, subKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache[%d/%s/%s]: %w", userID, ns, subKey, err)
	}
	return b, nil
}

func (c *RedisCache) PurgeForUser(ctx context.Context, userID int64) error {
	setKey := c.userKeysKey(userID)
	keys, err := c.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return fmt.Errorf("failed to purge cache for user %d: %w", userID, err)
	}
	_, err = c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		if len(keys) > 0 {
			p.Del(ctx, keys...)
		}
		p.Del(ctx, setKey)
		p.SRem(ctx, c.usersKey(), strconv.FormatInt(userID, 10))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache for user %d: %w", userID, err)
	}
	return nil
}

func (c *RedisCache) Users(ctx context.Context) ([]int64, error) {
	members, err := c.client.SMembers(ctx, c.usersKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cache users: %w", err)
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
