package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbvim/internal/application/port"
)

type fixedDetector struct {
	family string
}

func (d fixedDetector) GetAvailableFonts(context.Context) ([]string, error) {
	return []string{d.family}, nil
}

func (d fixedDetector) SelectBestFont(context.Context, port.FontCategory, []string) string {
	return d.family
}

func (fixedDetector) IsAvailable(context.Context) bool { return true }

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir, fixedDetector{family: "JetBrains Mono"})
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))

	cfg := mgr.Get()
	assert.Equal(t, "JetBrains Mono", cfg.Font.Family)
	assert.Equal(t, 13.0, cfg.Font.Size)
	assert.Equal(t, 4.0, cfg.Font.MinSize)
	assert.Equal(t, 128.0, cfg.Font.MaxSize)
	assert.Equal(t, []string{"--embed"}, cfg.Engine.Args)
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[font]
family = "Menlo"
size = 15
max_size = 96

[engine]
command = "/usr/local/bin/nvim"
args = ["--embed", "--clean"]
`)

	mgr, err := NewManagerAt(dir, nil)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "Menlo", cfg.Font.Family)
	assert.Equal(t, 15.0, cfg.Font.Size)
	assert.Equal(t, 96.0, cfg.Font.MaxSize)
	assert.Equal(t, 4.0, cfg.Font.MinSize, "unset keys fall back to defaults")
	assert.Equal(t, "/usr/local/bin/nvim", cfg.Engine.Command)
	assert.Equal(t, []string{"--embed", "--clean"}, cfg.Engine.Args)

	bounds := cfg.Font.Bounds()
	assert.Equal(t, 15.0, bounds.Default)
	assert.Equal(t, 96.0, bounds.Max)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[font]\nfamily = \"Menlo\"\n")
	t.Setenv("DUMBVIM_FONT_SIZE", "20")
	t.Setenv("DUMBVIM_LOG_LEVEL", "debug")

	mgr, err := NewManagerAt(dir, nil)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 20.0, cfg.Font.Size)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_RejectsInvalidFont(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[font]\nfamily = \"Menlo:h13\"\nsize = 200\n")

	mgr, err := NewManagerAt(dir, nil)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "font.family must not contain ':'")
	assert.Contains(t, err.Error(), "font.size must be between")
}

func TestLoad_RejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[font\nfamily = ")

	mgr, err := NewManagerAt(dir, nil)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestGet_ReturnsCopy(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir, nil)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Font.Family = "Changed"
	cfg.Engine.Args[0] = "--changed"

	again := mgr.Get()
	assert.Equal(t, defaultFontFamily, again.Font.Family)
	assert.Equal(t, "--embed", again.Engine.Args[0])
}

func TestWatch_NotifiesOnFileChange(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[font]\nfamily = \"Menlo\"\nsize = 13\n")

	mgr, err := NewManagerAt(dir, nil)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(cfg *Config) { changed <- cfg })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "watching twice is a no-op")

	writeConfig(t, dir, "[font]\nfamily = \"Menlo\"\nsize = 18\n")

	// A single write may surface as several fsnotify events.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changed:
			if cfg.Font.Size == 18 {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for config change notification")
		}
	}
}
