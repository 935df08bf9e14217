// Package cli holds the dependencies shared by the dumbvim commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/dumbvim/internal/cli/styles"
	"github.com/bnema/dumbvim/internal/domain/build"
	"github.com/bnema/dumbvim/internal/infrastructure/config"
	"github.com/bnema/dumbvim/internal/infrastructure/fonts"
	"github.com/bnema/dumbvim/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Fonts     *fonts.Resolver

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and builds the logger and font resolver.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = cfg.Logging.Format
	logger := logging.New(logCfg)

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		Fonts:   fonts.NewResolver(fonts.NewDetector(), nil),
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// Close releases all resources.
func (*App) Close() error {
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
