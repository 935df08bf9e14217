// Package styles provides reusable lipgloss-based CLI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconConfig  = "" // config
	IconFont    = "" // font
	IconCursor  = "" // chevron-right
)
