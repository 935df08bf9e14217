package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbvim/internal/bootstrap"
	"github.com/bnema/dumbvim/internal/domain/entity"
	"github.com/bnema/dumbvim/internal/logging"
)

var (
	attachAddress string
	attachNoWatch bool
)

var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Start an editor session",
	Long: `Spawn the configured engine (or dial --address) and attach as a UI.

Font changes made by the engine through guifont and guifontwide are
validated and applied to the grid. Invalid values are reported back to
the engine as E596 and the current font is re-asserted.

Examples:
  dumbvim attach                              # Spawn nvim --embed
  dumbvim attach --address /tmp/nvim.sock     # Dial a running nvim`,
	RunE: runAttach,
}

func init() {
	rootCmd.AddCommand(attachCmd)
	attachCmd.Flags().StringVarP(&attachAddress, "address", "a", "", "dial a running engine instead of spawning one")
	attachCmd.Flags().BoolVar(&attachNoWatch, "no-watch", false, "do not reload font preferences from the config file")
}

func runAttach(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := app.Config
	if attachAddress != "" {
		cfg.Engine.Address = attachAddress
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.FromContext(ctx)
	log.Info().
		Str("build", app.BuildInfo.String()).
		Str("build_date", app.BuildInfo.BuildDate).
		Msg("starting dumbvim")

	opts := bootstrap.EditorOptions{
		Config:  cfg,
		OnEvent: logViewEvent(ctx),
	}
	if !attachNoWatch {
		opts.Manager = app.Manager
	}

	return bootstrap.RunEditor(ctx, opts)
}

func logViewEvent(ctx context.Context) func(entity.ViewEvent) {
	log := logging.FromContext(ctx)
	return func(event entity.ViewEvent) {
		if changed, ok := event.(entity.GuifontChanged); ok {
			log.Info().Str("font", changed.Font.String()).Msg("grid font changed")
		}
	}
}
