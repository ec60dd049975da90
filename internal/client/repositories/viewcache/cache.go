// Package viewcache holds per-user copies of view data (conversation lists,
// message threads, wishlist, items, item status history) so a signed-in
// user can browse while the backend is unreachable. Every entry is owned by
// one user id and all of a user's entries can be dropped at once.
package viewcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/uniswap/internal/common"
	"github.com/redis/go-redis/v9"
)

// Namespace partitions a user's cache by view.
type Namespace string

const (
	Conversations     Namespace = "conversations"
	Messages          Namespace = "messages"
	Wishlist          Namespace = "wishlist"
	Items             Namespace = "items"
	ItemStatusHistory Namespace = "item_status_history"
)

// Namespaces lists every namespace in use.
var Namespaces = []Namespace{Conversations, Messages, Wishlist, Items, ItemStatusHistory}

// Cache is the namespaced per-user store. Get returns common.ErrorNotFound
// for a missing entry.
type Cache interface {
	Put(ctx context.Context, ns Namespace, userID int64, subKey string, value []byte) error
	Get(ctx context.Context, ns Namespace, userID int64, subKey string) ([]byte, error)
	PurgeForUser(ctx context.Context, userID int64) error
	Users(ctx context.Context) ([]int64, error)
}

// PutJSON encodes v and stores it.
func PutJSON(ctx context.Context, c Cache, ns Namespace, userID int64, subKey string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s cache entry: %w", ns, err)
	}
	return c.Put(ctx, ns, userID, subKey, b)
}

// GetJSON loads an entry into v. It reports false, without error, when the
// entry is missing.
func GetJSON(ctx context.Context, c Cache, ns Namespace, userID int64, subKey string, v any) (bool, error) {
	b, err := c.Get(ctx, ns, userID, subKey)
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("failed to decode %s cache entry: %w", ns, err)
	}
	return true, nil
}

// Options selects and configures a backend for Open.
type Options struct {
	Backend       string
	DB            *sql.DB
	RedisAddr     string
	RedisPassword string
}

// Open builds the configured backend. For redis the server is pinged first;
// the returned close function releases the client. The sqlite backend does
// not own db, so its close function is a no-op.
func Open(ctx context.Context, o Options) (Cache, func() error, error) {
	switch o.Backend {
	case "", "sqlite":
		return NewSQLiteCache(o.DB), func() error { return nil }, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     o.RedisAddr,
			Password: o.RedisPassword,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return NewRedisCache(client, DefaultRedisPrefix), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", common.ErrUnknownCacheBackend, o.Backend)
	}
}
