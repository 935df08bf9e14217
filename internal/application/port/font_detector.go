package port

import "context"

// FontCategory represents a category of fonts for fallback selection.
type FontCategory string

const (
	// FontCategoryMonospace is the grid font category, the only one an editor
	// grid can render.
	FontCategoryMonospace FontCategory = "monospace"
	// FontCategorySansSerif is used for UI chrome text.
	FontCategorySansSerif FontCategory = "sans-serif"
)

// FontDetector lists installed font families and picks the first installed
// family of a fallback chain. It drives the default font chosen on first run.
type FontDetector interface {
	// GetAvailableFonts returns the font family names installed on the system.
	// Returns an error if font detection is not available (e.g., fc-list missing).
	GetAvailableFonts(ctx context.Context) ([]string, error)

	// SelectBestFont returns the first available font from the fallback chain,
	// or the generic family name for category if none are installed.
	SelectBestFont(ctx context.Context, category FontCategory, fallbackChain []string) string

	// IsAvailable returns true if font detection is available on this system.
	IsAvailable(ctx context.Context) bool
}
