package styles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbvim/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderStatus renders the config file path and the effective font and engine settings.
func (r *ConfigRenderer) RenderStatus(path string, cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	engine := cfg.Engine.Command
	if cfg.Engine.Address != "" {
		engine = cfg.Engine.Address
	}

	row := func(key, value string) string {
		return fmt.Sprintf("    %s %s %s\n", iconStyle.Render(IconCursor), keyStyle.Render(key), valStyle.Render(value))
	}

	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), keyStyle.Render(path)) +
		row("font", cfg.Font.DefaultFont().String()) +
		row("size range", fmt.Sprintf("%g-%g", cfg.Font.MinSize, cfg.Font.MaxSize)) +
		row("engine", engine) +
		row("grid", strconv.Itoa(cfg.Engine.Width)+"x"+strconv.Itoa(cfg.Engine.Height)) +
		row("log level", cfg.Logging.Level)
}

// RenderSchemaWritten renders the confirmation after writing the JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(dir string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Schema written to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(dir),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
