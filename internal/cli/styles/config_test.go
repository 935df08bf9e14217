package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbvim/internal/cli/styles"
	"github.com/bnema/dumbvim/internal/domain/entity"
	"github.com/bnema/dumbvim/internal/infrastructure/config"
)

func TestConfigRenderer_RenderStatus(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderStatus("/tmp/dumbvim/config.toml", config.DefaultConfig())
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "monospace 13pt")
	require.Contains(t, out, "4-128")
	require.Contains(t, out, "80x24")
}

func TestConfigRenderer_RenderStatusPrefersAddress(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	cfg := config.DefaultConfig()
	cfg.Engine.Address = "/run/user/1000/nvim.sock"

	out := r.RenderStatus("config.toml", cfg)
	require.Contains(t, out, "nvim.sock")
}

func TestFontRenderer_RenderParsed(t *testing.T) {
	r := styles.NewFontRenderer(styles.NewTheme())

	out := r.RenderParsed("Fira Code:h14", entity.Font{Family: "Fira Code", Size: 14}, "Fira_Code:h14")
	require.Contains(t, out, "Fira Code 14pt")
	require.Contains(t, out, "Fira_Code:h14")
}

func TestFontRenderer_RenderRejected(t *testing.T) {
	r := styles.NewFontRenderer(styles.NewTheme())

	out := r.RenderRejected("E596: Invalid font(s): gufont=Nope:h12", errors.New("unknown font family"))
	require.Contains(t, out, "E596")
	require.Contains(t, out, "unknown font family")
}

func TestFontRenderer_RenderFamilies(t *testing.T) {
	r := styles.NewFontRenderer(styles.NewTheme())

	require.Contains(t, r.RenderFamilies("", nil), "No font families found")
	require.Contains(t, r.RenderFamilies("fira", nil), `"fira"`)

	out := r.RenderFamilies("", []string{"Fira Code", "Iosevka"})
	require.Contains(t, out, "Fira Code")
	require.Contains(t, out, "Iosevka")
}
