package config

import (
	"fmt"
	"strings"

	"github.com/bnema/dumbvim/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateFont(config)...)
	validationErrors = append(validationErrors, validateEngine(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateFont(config *Config) []string {
	font := config.Font
	validationErrors := validation.ValidateFontFamily("font.family", font.Family)
	return append(validationErrors, validation.ValidateFontSizeRange("font", font.Size, font.MinSize, font.MaxSize)...)
}

func validateEngine(config *Config) []string {
	var validationErrors []string
	if config.Engine.Width < 1 {
		validationErrors = append(validationErrors, "engine.width must be at least 1")
	}
	if config.Engine.Height < 1 {
		validationErrors = append(validationErrors, "engine.height must be at least 1")
	}
	if config.Engine.Address == "" && !containsArg(config.Engine.Args, "--embed") {
		validationErrors = append(validationErrors, "engine.args must include --embed when engine.address is empty")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		return nil
	default:
		return []string{fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error", config.Logging.Level)}
	}
}

func containsArg(args []string, want string) bool {
	for _, arg := range args {
		if arg == want {
			return true
		}
	}
	return false
}
