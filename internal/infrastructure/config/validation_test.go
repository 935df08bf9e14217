package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateFont(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "non positive min", mutate: func(c *Config) { c.Font.MinSize = 0 }, wantErr: "font.min_size must be positive"},
		{name: "max below min", mutate: func(c *Config) { c.Font.MaxSize = 2 }, wantErr: "font.max_size must be greater"},
		{name: "size above max", mutate: func(c *Config) { c.Font.Size = 200 }, wantErr: "font.size must be between"},
		{name: "colon in family", mutate: func(c *Config) { c.Font.Family = "Menlo:h12" }, wantErr: "must not contain ':'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateEngine_EmbedRequiredWithoutAddress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Args = []string{"--clean"}
	assert.Error(t, validateConfig(cfg))

	cfg.Engine.Address = "/tmp/nvim.sock"
	assert.NoError(t, validateConfig(cfg))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Font.Family = "   "
	cfg.Logging.Level = " DEBUG "
	cfg.Logging.Format = "xml"
	cfg.Engine.Command = ""

	normalizeConfig(cfg)

	assert.Equal(t, defaultFontFamily, cfg.Font.Family)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, defaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, defaultEngineCommand, cfg.Engine.Command)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"min_size"`)
	assert.Contains(t, string(data), "dumbvim configuration")
}
