// Package services holds one thin client per backend resource. Each maps
// its operations onto REST paths through a Requester and hands raw payloads
// to package normalize. Errors from the transport are returned unchanged
// and nothing is retried.
package services

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Requester is the transport the services need; *apiclient.Client
// satisfies it.
type Requester interface {
	Do(ctx context.Context, method, path string, body, out any) error
	Upload(ctx context.Context, path, filename string, r io.Reader, out any) error
}

func getList(ctx context.Context, r Requester, path string) ([]any, error) {
	var raw []any
	if err := r.Do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func getObject(ctx context.Context, r Requester, method, path string, body any) (map[string]any, error) {
	var raw map[string]any
	if err := r.Do(ctx, method, path, body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func id(n int64) string { return strconv.FormatInt(n, 10) }

func seg(s string) string { return url.PathEscape(s) }
