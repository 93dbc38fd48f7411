// Package logging provides the structured, context-aware logger used by the
// services, workers and bootstrap code.
package logging

import "context"

// Logger takes key-value pairs after the message:
//
//	log.Info(ctx, "review created", "review_id", id, "item_id", itemID)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}
