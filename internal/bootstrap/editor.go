// Package bootstrap wires an editor session: UI loop, view, engine bridge
// and the font synchronizer.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbvim/internal/application/port"
	"github.com/bnema/dumbvim/internal/application/usecase"
	"github.com/bnema/dumbvim/internal/domain/entity"
	"github.com/bnema/dumbvim/internal/infrastructure/config"
	"github.com/bnema/dumbvim/internal/infrastructure/fonts"
	"github.com/bnema/dumbvim/internal/infrastructure/nvim"
	"github.com/bnema/dumbvim/internal/logging"
	"github.com/bnema/dumbvim/internal/ui/mainloop"
	"github.com/bnema/dumbvim/internal/ui/view"
)

// EditorOptions configures RunEditor.
type EditorOptions struct {
	Config *config.Config
	// Manager, when set, is watched for font changes made in the config file.
	Manager *config.Manager
	// OnEvent is called from the event goroutine for every view event.
	OnEvent func(entity.ViewEvent)
}

// RunEditor attaches to the engine and keeps fonts in sync until the engine
// exits or ctx is cancelled.
func RunEditor(ctx context.Context, opts EditorOptions) error {
	cfg := opts.Config
	if cfg == nil {
		return errors.New("bootstrap: config is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctx = logging.WithEngine(ctx, engineEndpoint(cfg.Engine))
	log := logging.FromContext(ctx)
	timer := NewStartupTimer()

	loop := mainloop.NewLoop()
	resolver := fonts.NewResolver(fonts.NewDetector(), nil)

	initial := initialFont(ctx, resolver, cfg.Font)
	timer.Mark("font")

	editorView := view.New(ctx, initial, view.NewLogRenderer(), loop.Post)
	defer editorView.Close()
	events := editorView.Subscribe()

	bridge, err := nvim.Start(ctx, nvim.Options{
		Command: cfg.Engine.Command,
		Args:    cfg.Engine.Args,
		Address: cfg.Engine.Address,
		Width:   cfg.Engine.Width,
		Height:  cfg.Engine.Height,
	})
	if err != nil {
		return err
	}
	defer func() { _ = bridge.Close() }()
	timer.Mark("engine")

	syncFont := usecase.NewSyncFontUseCase(
		bridge.Client(),
		resolver,
		editorView,
		editorView,
		usecase.SyncFontConfig{
			Bounds:          cfg.Font.Bounds(),
			RunOnMainThread: loop.Post,
		},
	)

	if opts.Manager != nil {
		watchFontPreferences(logging.WithComponent(ctx, "preferences"), opts.Manager, cfg.Font, resolver, syncFont)
	}
	timer.LogDebug(ctx)
	log.Info().Str("font", initial.String()).Msg("editor session starting")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return bridge.Serve(logging.WithComponent(gctx, "fontsync"), syncFont.HandleRemoteOptions)
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if opts.OnEvent != nil {
					opts.OnEvent(event)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("editor session: %w", err)
	}
	return nil
}

// initialFont resolves the configured font, falling back to the generic
// monospace family at the configured size.
func initialFont(ctx context.Context, resolver port.FontResolver, cfg config.FontConfig) entity.Font {
	font, err := resolver.Resolve(ctx, cfg.Family, cfg.Size)
	if err == nil {
		return font
	}

	logging.FromContext(ctx).Warn().
		Err(err).
		Str("family", cfg.Family).
		Msg("configured font unavailable, using generic monospace")
	return entity.Font{Family: fonts.GenericMonospace, Size: cfg.Size}
}

// localFontApplier is the part of SyncFontUseCase driven by preference changes.
type localFontApplier interface {
	ApplyLocalFont(ctx context.Context, font entity.Font)
}

// watchFontPreferences applies font edits made in the config file as local
// font changes.
func watchFontPreferences(
	ctx context.Context,
	mgr *config.Manager,
	current config.FontConfig,
	resolver port.FontResolver,
	applier localFontApplier,
) {
	log := logging.FromContext(ctx)
	prefs := &fontPreferences{last: current, resolver: resolver, applier: applier}

	mgr.OnConfigChange(func(next *config.Config) {
		prefs.update(ctx, next.Font)
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable, font preferences will not reload")
	}
}

// fontPreferences tracks the last seen font preference. update is called
// sequentially by the config watcher.
type fontPreferences struct {
	last     config.FontConfig
	resolver port.FontResolver
	applier  localFontApplier
}

func (p *fontPreferences) update(ctx context.Context, next config.FontConfig) {
	if next.Family == p.last.Family && next.Size == p.last.Size {
		return
	}
	p.last = next

	font, err := p.resolver.Resolve(ctx, next.Family, next.Size)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("family", next.Family).Msg("ignoring font preference")
		return
	}
	p.applier.ApplyLocalFont(ctx, font)
}

func engineEndpoint(cfg config.EngineConfig) string {
	if cfg.Address != "" {
		return cfg.Address
	}
	return cfg.Command
}
