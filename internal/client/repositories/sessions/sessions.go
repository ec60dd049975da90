// Package sessions persists the signed-in session (token plus user
// snapshot) in the metadata table under the auth_token and auth_user keys.
package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/uniswap/internal/common"
	"github.com/dmitrijs2005/uniswap/internal/dbx"
)

// Repository is the session vault. Token and Purge also make it usable as
// the API client's token source.
type Repository interface {
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (*models.UserSummary, error)
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s models.Session) error
	SaveUser(ctx context.Context, u models.UserSummary) error
	Purge(ctx context.Context) error
}

type SQLiteRepository struct {
	db   *sql.DB
	meta metadata.Repository
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, meta: metadata.NewSQLiteRepository(db)}
}

// Token returns the persisted token, or "" when none is stored.
func (r *SQLiteRepository) Token(ctx context.Context) (string, error) {
	b, err := r.meta.Get(ctx, common.AuthTokenKey)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// User returns the persisted snapshot, or nil when none is stored. A
// snapshot that no longer decodes is treated as absent.
func (r *SQLiteRepository) User(ctx context.Context) (*models.UserSummary, error) {
	b, err := r.meta.Get(ctx, common.AuthUserKey)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	var u models.UserSummary
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, nil
	}
	return &u, nil
}

// Load returns the stored session, or nil unless both the token and the
// user snapshot are present.
func (r *SQLiteRepository) Load(ctx context.Context) (*models.Session, error) {
	token, err := r.Token(ctx)
	if err != nil {
		return nil, err
	}
	user, err := r.User(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" || user == nil {
		return nil, nil
	}
	return &models.Session{Token: token, User: *user}, nil
}

// Save writes token and snapshot in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, s models.Session) error {
	user, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("failed to encode user snapshot: %w", err)
	}
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		meta := metadata.NewSQLiteRepository(tx)
		if err := meta.Set(ctx, common.AuthTokenKey, []byte(s.Token)); err != nil {
			return err
		}
		return meta.Set(ctx, common.AuthUserKey, user)
	})
}

func (r *SQLiteRepository) SaveUser(ctx context.Context, u models.UserSummary) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user snapshot: %w", err)
	}
	return r.meta.Set(ctx, common.AuthUserKey, b)
}

// Purge removes both the token and the user snapshot.
func (r *SQLiteRepository) Purge(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.AuthTokenKey, common.AuthUserKey)
	})
}
