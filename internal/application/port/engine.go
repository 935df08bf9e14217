// Package port defines the boundaries between use cases and infrastructure.
package port

import "context"

// EngineClient is the subset of the editor engine RPC surface used to keep
// remote options in sync. Calls may block until the engine answers; callers
// that must not wait run them asynchronously.
type EngineClient interface {
	// SetOption sets a global engine option to a string value.
	SetOption(ctx context.Context, name, value string) error
	// ErrWriteln writes one line to the engine's error output.
	ErrWriteln(ctx context.Context, line string) error
}
