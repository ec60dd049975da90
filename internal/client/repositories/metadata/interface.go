// Package metadata is the key/value table of the local database. The
// session vault keeps the auth token and the user snapshot under
// common.AuthTokenKey and common.AuthUserKey.
package metadata

import (
	"context"
)

// Repository stores opaque values by key. Get on a missing key returns
// (nil, nil), which the vault reads as "signed out".
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
