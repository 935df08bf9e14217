// Package fonts discovers installed font families and resolves guifont
// families against them.
package fonts

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/bnema/dumbvim/internal/application/port"
	"github.com/bnema/dumbvim/internal/logging"
)

// monospaceFallbackChain is unexported to prevent modification.
var monospaceFallbackChain = []string{
	"Menlo",
	"JetBrains Mono",
	"Fira Code",
	"Source Code Pro",
	"Noto Sans Mono",
	"DejaVu Sans Mono",
	"Liberation Mono",
	"FreeMono",
}

// MonospaceFallbackChain returns the fallback chain for grid fonts.
func MonospaceFallbackChain() []string {
	result := make([]string, len(monospaceFallbackChain))
	copy(result, monospaceFallbackChain)
	return result
}

// Generic family names. These always resolve.
const (
	GenericMonospace = "monospace"
	GenericSansSerif = "sans-serif"
	GenericSerif     = "serif"
)

// Detector implements port.FontDetector using fontconfig's fc-list command.
type Detector struct {
	mu             sync.RWMutex
	cachedFonts    []string
	cachePopulated bool
}

// NewDetector creates a new font detector.
func NewDetector() *Detector {
	return &Detector{}
}

// IsAvailable implements port.FontDetector.
func (*Detector) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath("fc-list")
	return err == nil
}

// GetAvailableFonts implements port.FontDetector.
func (d *Detector) GetAvailableFonts(ctx context.Context) ([]string, error) {
	log := logging.FromContext(ctx)

	d.mu.RLock()
	if d.cachePopulated {
		fonts := d.cachedFonts
		d.mu.RUnlock()
		return fonts, nil
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cachePopulated {
		return d.cachedFonts, nil
	}

	cmd := exec.CommandContext(ctx, "fc-list", ":", "family")
	output, err := cmd.Output()
	if err != nil {
		log.Debug().Err(err).Msg("failed to query system fonts")
		return nil, err
	}

	fonts, err := parseFamilies(output)
	if err != nil {
		return nil, err
	}

	d.cachedFonts = fonts
	d.cachePopulated = true
	log.Debug().Int("count", len(fonts)).Msg("cached system fonts")

	return fonts, nil
}

// SelectBestFont implements port.FontDetector.
func (d *Detector) SelectBestFont(
	ctx context.Context,
	category port.FontCategory,
	fallbackChain []string,
) string {
	log := logging.FromContext(ctx)

	availableFonts, err := d.GetAvailableFonts(ctx)
	if err != nil {
		log.Debug().
			Str("category", string(category)).
			Err(err).
			Msg("font detection unavailable, using generic fallback")
		return genericFallback(category)
	}

	fontSet := make(map[string]struct{}, len(availableFonts))
	for _, f := range availableFonts {
		fontSet[f] = struct{}{}
	}

	for _, font := range fallbackChain {
		if _, exists := fontSet[font]; exists {
			log.Debug().
				Str("category", string(category)).
				Str("font", font).
				Msg("selected font from fallback chain")
			return font
		}
	}

	generic := genericFallback(category)
	log.Debug().
		Str("category", string(category)).
		Str("fallback", generic).
		Msg("no fonts from fallback chain available, using generic")
	return generic
}

// parseFamilies reads fc-list output. A line may list several
// comma-separated aliases, e.g. "DejaVu Sans,DejaVu Sans Light".
func parseFamilies(output []byte) ([]string, error) {
	fontSet := make(map[string]struct{})
	var fonts []string

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		for _, family := range strings.Split(scanner.Text(), ",") {
			family = strings.TrimSpace(family)
			if family == "" {
				continue
			}
			if _, seen := fontSet[family]; !seen {
				fontSet[family] = struct{}{}
				fonts = append(fonts, family)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return fonts, nil
}

func genericFallback(category port.FontCategory) string {
	switch category {
	case port.FontCategoryMonospace:
		return GenericMonospace
	case port.FontCategorySansSerif:
		return GenericSansSerif
	default:
		return GenericMonospace
	}
}
