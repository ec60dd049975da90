package viewcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/uniswap/internal/common"
	"github.com/dmitrijs2005/uniswap/internal/dbx"
)

var _ Cache = (*SQLiteCache)(nil)

// SQLiteCache keeps entries in the view_cache table.
type SQLiteCache struct {
	db dbx.DBTX
}

func NewSQLiteCache(db dbx.DBTX) *SQLiteCache {
	return &SQLiteCache{db: db}
}

func (c *SQLiteCache) Put(ctx context.Context, ns Namespace, userID int64, subKey string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO view_cache (user_id, namespace, sub_key, value, updated_at)
		VALUES (?, ?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(user_id, namespace, sub_key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at
	`, userID, string(ns), subKey, value)
	if err != nil {
		return fmt.Errorf("failed to put cache[%d/%s/%s]: %w", userID, ns, subKey, err)
	}
	return nil
}

func (c *SQLiteCache) Get(ctx context.Context, ns Namespace, userID int64, subKey string) ([]byte, error) {
	var value []byte
	err := c.db.QueryRowContext(ctx, `
		SELECT value FROM view_cache WHERE user_id = ? AND namespace = ? AND sub_key = ?
	`, userID, string(ns), subKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache[%d/%s/%s]: %w", userID, ns, subKey, err)
	}
	return value, nil
}

func (c *SQLiteCache) PurgeForUser(ctx context.Context, userID int64) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM view_cache WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to purge cache for user %d: %w", userID, err)
	}
	return nil
}

func (c *SQLiteCache) Users(ctx context.Context) ([]int64, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM view_cache ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache users: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan cache user: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cache users: %w", err)
	}
	return ids, nil
}
