// Package validation holds field checks shared by configuration loaders.
package validation

import "strings"

const maxFontFamilyLen = 200

// ValidateFontFamily reports problems with a font family name used as a
// host-side preference. field prefixes every message.
func ValidateFontFamily(field string, value string) []string {
	value = strings.TrimSpace(value)
	var errs []string

	if value == "" {
		errs = append(errs, field+" cannot be empty")
		return errs
	}

	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" must not contain newlines")
	}

	// ':' separates the family from the size in the guifont wire form.
	if strings.Contains(value, ":") {
		errs = append(errs, field+" must not contain ':'")
	}

	if len(value) > maxFontFamilyLen {
		errs = append(errs, field+" is too long")
	}

	return errs
}

// ValidateFontSizeRange reports problems with a size and the range it must fall in.
func ValidateFontSizeRange(prefix string, size, minSize, maxSize float64) []string {
	var errs []string

	if minSize <= 0 {
		errs = append(errs, prefix+".min_size must be positive")
	}
	if maxSize < minSize {
		errs = append(errs, prefix+".max_size must be greater than or equal to "+prefix+".min_size")
	}
	if size < minSize || size > maxSize {
		errs = append(errs, prefix+".size must be between "+prefix+".min_size and "+prefix+".max_size")
	}

	return errs
}
