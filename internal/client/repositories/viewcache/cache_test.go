package viewcache

import (
	"context"
	"errors"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/uniswap/internal/client/storage"
	"github.com/dmitrijs2005/uniswap/internal/common"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// backends yields every Cache implementation available in this
// environment. Redis runs only when UNISWAP_TEST_REDIS_ADDR is set.
func backends(t *testing.T) map[string]func(t *testing.T) Cache {
	t.Helper()
	out := map[string]func(t *testing.T) Cache{
		"sqlite": func(t *testing.T) Cache { return NewSQLiteCache(setupDB(t)) },
	}
	if addr := os.Getenv("UNISWAP_TEST_REDIS_ADDR"); addr != "" {
		out["redis"] = func(t *testing.T) Cache {
			client := redis.NewClient(&redis.Options{Addr: addr})
			t.Cleanup(func() { _ = client.Close() })
			require.NoError(t, client.Ping(context.Background()).Err())
			return NewRedisCache(client, "uniswap:test:"+uuid.NewString())
		}
	}
	return out
}

func TestCache_Contract(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("get missing", func(t *testing.T) {
				c := mk(t)
				_, err := c.Get(ctx, Items, 1, "")
				require.ErrorIs(t, err, common.ErrorNotFound)
			})

			t.Run("put get overwrite", func(t *testing.T) {
				c := mk(t)
				require.NoError(t, c.Put(ctx, Messages, 1, "2", []byte("one")))
				require.NoError(t, c.Put(ctx, Messages, 1, "2", []byte("two")))

				v, err := c.Get(ctx, Messages, 1, "2")
				require.NoError(t, err)
				assert.Equal(t, []byte("two"), v)
			})

			t.Run("entries are per user and namespace", func(t *testing.T) {
				c := mk(t)
				require.NoError(t, c.Put(ctx, Wishlist, 1, "", []byte("a")))
				require.NoError(t, c.Put(ctx, Wishlist, 2, "", []byte("b")))
				require.NoError(t, c.Put(ctx, Conversations, 1, "", []byte("c")))

				v, err := c.Get(ctx, Wishlist, 2, "")
				require.NoError(t, err)
				assert.Equal(t, []byte("b"), v)

				v, err = c.Get(ctx, Conversations, 1, "")
				require.NoError(t, err)
				assert.Equal(t, []byte("c"), v)
			})

			t.Run("purge drops only that user", func(t *testing.T) {
				c := mk(t)
				for _, ns := range Namespaces {
					require.NoError(t, c.Put(ctx, ns, 1, "k", []byte("x")))
				}
				require.NoError(t, c.Put(ctx, Items, 2, "k", []byte("y")))

				users, err := c.Users(ctx)
				require.NoError(t, err)
				assert.Equal(t, []int64{1, 2}, users)

				require.NoError(t, c.PurgeForUser(ctx, 1))
				require.NoError(t, c.PurgeForUser(ctx, 1), "purge is idempotent")

				for _, ns := range Namespaces {
					_, err := c.Get(ctx, ns, 1, "k")
					require.ErrorIs(t, err, common.ErrorNotFound, "namespace %s", ns)
				}
				v, err := c.Get(ctx, Items, 2, "k")
				require.NoError(t, err)
				assert.Equal(t, []byte("y"), v)

				users, err = c.Users(ctx)
				require.NoError(t, err)
				assert.Equal(t, []int64{2}, users)
			})
		})
	}
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	c := NewSQLiteCache(setupDB(t))

	type convo struct {
		PartnerID int64  `json:"partnerId"`
		Last      string `json:"last"`
	}

	var got []convo
	ok, err := GetJSON(ctx, c, Conversations, 5, "", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	want := []convo{{PartnerID: 9, Last: "hi"}}
	require.NoError(t, PutJSON(ctx, c, Conversations, 5, "", want))

	ok, err = GetJSON(ctx, c, Conversations, 5, "", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetJSON_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	c := NewSQLiteCache(setupDB(t))
	require.NoError(t, c.Put(ctx, Items, 1, "", []byte("{not json")))

	var v map[string]any
	_, err := GetJSON(ctx, c, Items, 1, "", &v)
	require.ErrorContains(t, err, "failed to decode items cache entry")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, closeFn, err := Open(ctx, Options{Backend: "sqlite", DB: setupDB(t)})
	require.NoError(t, err)
	require.NoError(t, closeFn())
	assert.IsType(t, &SQLiteCache{}, c)

	_, _, err = Open(ctx, Options{Backend: "memcached"})
	require.ErrorIs(t, err, common.ErrUnknownCacheBackend)

	_, _, err = Open(ctx, Options{Backend: "redis", RedisAddr: "127.0.0.1:1"})
	require.ErrorContains(t, err, "redis ping failed")
}

func TestSQLiteCache_ErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	c := NewSQLiteCache(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	require.ErrorContains(t, c.Put(ctx, Items, 1, "", []byte("x")), "failed to put cache[1/items/]")
	_, err := c.Get(ctx, Items, 1, "")
	require.ErrorContains(t, err, "failed to get cache[1/items/]")
	require.ErrorContains(t, c.PurgeForUser(ctx, 1), "failed to purge cache for user 1")
	_, err = c.Users(ctx)
	require.ErrorContains(t, err, "failed to list cache users")
}

func TestSQLiteCache_UsersScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT DISTINCT user_id FROM view_cache`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)).AddRow("not-a-number"))

	ids, err := NewSQLiteCache(db).Users(context.Background())
	require.ErrorContains(t, err, "failed to scan cache user")
	assert.Nil(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCache_UsersRowError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	broken := errors.New("database disk image is malformed")

	mock.ExpectQuery(`SELECT DISTINCT user_id FROM view_cache`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)).RowError(0, broken))

	_, err = NewSQLiteCache(db).Users(context.Background())
	require.ErrorIs(t, err, broken)
	require.ErrorContains(t, err, "failed to iterate cache users")
	assert.NoError(t, mock.ExpectationsWereMet())
}
