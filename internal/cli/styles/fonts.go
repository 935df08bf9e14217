package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbvim/internal/domain/entity"
)

// FontRenderer renders guifont parse results and font family listings.
type FontRenderer struct {
	theme *Theme
}

// NewFontRenderer creates a new font renderer with the given theme.
func NewFontRenderer(theme *Theme) *FontRenderer {
	return &FontRenderer{theme: theme}
}

// RenderParsed renders an accepted guifont value with its canonical wire form.
func (r *FontRenderer) RenderParsed(spec string, font entity.Font, canonical string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s %s\n    %s %s\n    %s %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(spec),
		r.theme.Subtle.Render("font"),
		r.theme.Highlight.Render(font.String()),
		r.theme.Subtle.Render("wire"),
		r.theme.Normal.Render(canonical),
	)
}

// RenderRejected renders the error line the engine would receive for spec.
func (r *FontRenderer) RenderRejected(errLine string, reason error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s %s\n    %s\n",
		iconStyle.Render(IconX),
		r.theme.ErrorStyle.Render(errLine),
		r.theme.Subtle.Render(reason.Error()),
	)
}

// RenderFamilies renders font families as a list, or a notice when empty.
func (r *FontRenderer) RenderFamilies(query string, families []string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	if len(families) == 0 {
		warn := lipgloss.NewStyle().Foreground(r.theme.Warning)
		if query == "" {
			return fmt.Sprintf("\n  %s No font families found\n", warn.Render(IconWarning))
		}
		return fmt.Sprintf("\n  %s No font family matches %q\n", warn.Render(IconWarning), query)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s %s\n", iconStyle.Render(IconFont), r.theme.Badge.Render(fmt.Sprintf("%d", len(families))))
	for _, family := range families {
		fmt.Fprintf(&sb, "    %s %s\n", iconStyle.Render(IconCursor), r.theme.Normal.Render(family))
	}
	return sb.String()
}
