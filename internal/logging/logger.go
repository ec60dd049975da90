// Package logging is the logger the client packages accept. The API client
// logs every request at debug and failed ones at warn; the session store and
// the CLI log storage and cache problems they recover from.
package logging

import "context"

// Logger takes a message plus alternating key/value pairs:
//
//	log.Warn(ctx, "failed to update view cache", "namespace", ns, "error", err)
//
// Token values must never be passed as args.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
