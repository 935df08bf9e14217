package nvim

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/neovim/go-client/nvim"

	"github.com/bnema/dumbvim/internal/logging"
)

// Options configures how the engine is started and attached.
type Options struct {
	// Command and Args spawn an embedded engine. Ignored when Address is set.
	Command string
	Args    []string
	Env     []string
	// Address dials a running engine (socket path or host:port).
	Address string
	Width   int
	Height  int
}

// OptionHandler receives the option changes of one redraw batch.
type OptionHandler func(ctx context.Context, options map[string]any)

// Bridge owns the engine connection.
type Bridge struct {
	opts Options
	v    *nvim.Nvim

	closeOnce sync.Once
	closeErr  error
}

// Start spawns or dials the engine. The connection is not served until Serve.
func Start(ctx context.Context, opts Options) (*Bridge, error) {
	log := logging.FromContext(ctx)
	logf := func(format string, args ...any) {
		log.Debug().Msgf(format, args...)
	}

	var (
		v   *nvim.Nvim
		err error
	)
	if opts.Address != "" {
		v, err = nvim.Dial(opts.Address,
			nvim.DialContext(ctx),
			nvim.DialServe(false),
			nvim.DialLogf(logf),
		)
		if err != nil {
			return nil, fmt.Errorf("dial engine at %s: %w", opts.Address, err)
		}
	} else {
		v, err = nvim.NewChildProcess(
			nvim.ChildProcessCommand(opts.Command),
			nvim.ChildProcessArgs(opts.Args...),
			nvim.ChildProcessEnv(opts.Env),
			nvim.ChildProcessContext(ctx),
			nvim.ChildProcessServe(false),
			nvim.ChildProcessLogf(logf),
		)
		if err != nil {
			return nil, fmt.Errorf("start engine %s: %w", opts.Command, err)
		}
	}

	return &Bridge{opts: opts, v: v}, nil
}

// Client returns the engine client for this connection.
func (b *Bridge) Client() *Client {
	return NewClient(b.v)
}

// Serve registers handler for option changes, attaches as a UI and blocks
// until the engine exits or ctx is cancelled. handler runs on the RPC
// goroutine and must not wait on engine requests.
func (b *Bridge) Serve(ctx context.Context, handler OptionHandler) error {
	log := logging.FromContext(ctx)

	err := b.v.RegisterHandler("redraw", func(updates ...[]any) {
		if options := OptionSets(updates); len(options) > 0 {
			handler(ctx, options)
		}
	})
	if err != nil {
		return fmt.Errorf("register redraw handler: %w", err)
	}

	served := make(chan error, 1)
	go func() { served <- b.v.Serve() }()

	uiOptions := map[string]any{
		"rgb":          true,
		"ext_linegrid": true,
	}
	if err := b.v.AttachUI(b.opts.Width, b.opts.Height, uiOptions); err != nil {
		_ = b.Close()
		<-served
		return fmt.Errorf("attach ui: %w", err)
	}
	log.Info().Int("width", b.opts.Width).Int("height", b.opts.Height).Msg("attached to engine")

	select {
	case <-ctx.Done():
		_ = b.Close()
		<-served
		return ctx.Err()
	case err := <-served:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("engine connection: %w", err)
		}
		log.Info().Msg("engine exited")
		return nil
	}
}

// Close closes the connection and, for embedded engines, stops the process.
func (b *Bridge) Close() error {
	b.closeOnce.Do(func() {
		b.closeErr = b.v.Close()
	})
	return b.closeErr
}
