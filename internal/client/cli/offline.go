package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/uniswap/internal/client/apiclient"
	"github.com/dmitrijs2005/uniswap/internal/client/repositories/viewcache"
)

// cached runs fetch and keeps its result in the signed-in user's view
// cache. When the backend cannot be reached the last cached copy is
// returned instead, with a note to the user. Anonymous users get no cache.
func cached[T any](ctx context.Context, a *App, ns viewcache.Namespace, subKey string, fetch func(context.Context) (T, error)) (T, error) {
	v, err := fetch(ctx)

	u, uerr := a.store.User()
	if uerr != nil || a.caches == nil {
		return v, err
	}

	if err == nil {
		if perr := viewcache.PutJSON(ctx, a.caches, ns, u.UserID, subKey, v); perr != nil {
			a.log.Warn(ctx, "failed to update view cache", "namespace", ns, "error", perr)
		}
		return v, nil
	}

	if !errors.Is(err, apiclient.ErrUnreachable) && !errors.Is(err, apiclient.ErrNetwork) {
		return v, err
	}

	var fallback T
	ok, gerr := viewcache.GetJSON(ctx, a.caches, ns, u.UserID, subKey, &fallback)
	if gerr != nil {
		a.log.Warn(ctx, "failed to read view cache", "namespace", ns, "error", gerr)
	}
	if !ok {
		return v, err
	}
	a.println("(offline: " + apiclient.Message(err) + " Showing cached data.)")
	return fallback, nil
}
