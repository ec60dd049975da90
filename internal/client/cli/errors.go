package cli

import (
	"context"
	"errors"
	"sort"

	"github.com/dmitrijs2005/uniswap/internal/client/apiclient"
	"github.com/dmitrijs2005/uniswap/internal/client/chat"
	"github.com/dmitrijs2005/uniswap/internal/client/forms"
	"github.com/dmitrijs2005/uniswap/internal/common"
)

var errUsage = errors.New("usage")

// usageError makes report print the command's usage line.
type usageError struct{ usage string }

func (e usageError) Error() string { return "Usage: " + e.usage }

func (e usageError) Unwrap() error { return errUsage }

// report prints err the way the user should see it.
func (a *App) report(ctx context.Context, err error) {
	var ve *forms.ValidationError
	switch {
	case errors.As(err, &ve):
		a.println(ve.Message)
		keys := make([]string, 0, len(ve.Fields))
		for k := range ve.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if ve.Fields[k] != ve.Message {
				a.printf("  %s: %s\n", k, ve.Fields[k])
			}
		}
	case errors.Is(err, errUsage):
		a.println(err.Error())
	case errors.Is(err, apiclient.ErrUnauthenticated):
		a.println("Your session has expired. Please log in again (type 'login').")
	case errors.Is(err, common.ErrNotAuthenticated):
		a.println("Please log in first (type 'login').")
	case errors.Is(err, chat.ErrSendInProgress):
		a.println("Still sending the previous message, try again in a moment.")
	case errors.Is(err, apiclient.ErrUnreachable), errors.Is(err, apiclient.ErrNetwork),
		errors.Is(err, apiclient.ErrServer), errors.Is(err, apiclient.ErrNotFound):
		a.println("Error:", apiclient.Message(err))
		a.println("Run the command again to retry.")
	default:
		a.println("Error:", apiclient.Message(err))
	}
	a.log.Debug(ctx, "command failed", "error", err)
}
