package config

// Default configuration constants
const (
	defaultFontFamily  = "monospace"
	defaultFontSize    = 13  // points
	defaultMinFontSize = 4   // points
	defaultMaxFontSize = 128 // points

	defaultEngineCommand = "nvim"
	defaultEngineWidth   = 80 // columns
	defaultEngineHeight  = 24 // rows

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Font: FontConfig{
			Family:  defaultFontFamily,
			Size:    defaultFontSize,
			MinSize: defaultMinFontSize,
			MaxSize: defaultMaxFontSize,
		},
		Engine: EngineConfig{
			Command: defaultEngineCommand,
			Args:    []string{"--embed"},
			Width:   defaultEngineWidth,
			Height:  defaultEngineHeight,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
