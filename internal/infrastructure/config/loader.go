package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/dumbvim/internal/application/port"
	"github.com/bnema/dumbvim/internal/infrastructure/fonts"
	"github.com/bnema/dumbvim/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	detector  port.FontDetector
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager for the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir, fonts.NewDetector())
}

// NewManagerAt creates a configuration manager reading config.toml from
// configDir. detector picks the font family written on first run and may be nil.
func NewManagerAt(configDir string, detector port.FontDetector) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// Most keys map automatically, e.g. DUMBVIM_FONT_FAMILY.
	v.SetEnvPrefix("DUMBVIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DUMBVIM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBVIM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUMBVIM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBVIM_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("engine.address", "NVIM_LISTEN_ADDRESS", "DUMBVIM_ENGINE_ADDRESS"); err != nil {
		return nil, fmt.Errorf("failed to bind engine address: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		detector:  detector,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Font.Family = strings.TrimSpace(config.Font.Family)
	if config.Font.Family == "" {
		config.Font.Family = defaultFontFamily
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Format {
	case "json", "console":
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Engine.Command = strings.TrimSpace(config.Engine.Command)
	if config.Engine.Command == "" {
		config.Engine.Command = defaultEngineCommand
	}
	config.Engine.Address = strings.TrimSpace(config.Engine.Address)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	configCopy.Engine.Args = append([]string(nil), m.config.Engine.Args...)
	return &configCopy
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, "config.toml")
}

// createDefaultConfig writes the defaults, with the best installed monospace
// family, to config.toml.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, "config.toml")

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.detectAndSetFont()

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := WriteSchemaFile(m.configDir); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

func (m *Manager) detectAndSetFont() {
	if m.detector == nil {
		return
	}

	logger := logging.NewFromEnv()
	ctx := logging.WithContext(context.Background(), logger)

	if !m.detector.IsAvailable(ctx) {
		logger.Debug().Msg("font detection unavailable, keeping default font family")
		return
	}

	family := m.detector.SelectBestFont(ctx, port.FontCategoryMonospace, fonts.MonospaceFallbackChain())
	m.viper.SetDefault("font.family", family)
	logger.Debug().Str("family", family).Msg("detected default font family")
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("font.family", defaults.Font.Family)
	m.viper.SetDefault("font.size", defaults.Font.Size)
	m.viper.SetDefault("font.min_size", defaults.Font.MinSize)
	m.viper.SetDefault("font.max_size", defaults.Font.MaxSize)

	m.viper.SetDefault("engine.command", defaults.Engine.Command)
	m.viper.SetDefault("engine.args", defaults.Engine.Args)
	m.viper.SetDefault("engine.address", defaults.Engine.Address)
	m.viper.SetDefault("engine.width", defaults.Engine.Width)
	m.viper.SetDefault("engine.height", defaults.Engine.Height)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
