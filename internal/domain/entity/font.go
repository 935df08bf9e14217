// Package entity contains the core domain types.
package entity

import "fmt"

// Font is a resolved, renderable font handle.
type Font struct {
	Family string
	Size   float64
}

// String returns a human readable form, e.g. "Menlo 13pt".
func (f Font) String() string {
	return fmt.Sprintf("%s %gpt", f.Family, f.Size)
}

// IsZero reports whether no font has been set.
func (f Font) IsZero() bool {
	return f.Family == "" && f.Size == 0
}

// FontSlot identifies which font role an option targets.
type FontSlot int

const (
	// SlotPrimary is the main text font (guifont).
	SlotPrimary FontSlot = iota
	// SlotWide is the double-width glyph font (guifontwide).
	SlotWide
)

func (s FontSlot) String() string {
	switch s {
	case SlotPrimary:
		return "primary"
	case SlotWide:
		return "wide"
	default:
		return fmt.Sprintf("FontSlot(%d)", int(s))
	}
}
