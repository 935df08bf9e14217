// Package fontspec converts fonts to and from the engine wire form
// "Family_Name:h<size>".
package fontspec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/dumbvim/internal/domain/entity"
)

const (
	fieldSeparator = ":"
	sizePrefix     = "h"
)

// ErrMalformed is returned when a spec does not have exactly one ':'.
var ErrMalformed = errors.New("malformed font spec")

// ParseError describes a spec that failed structural validation.
type ParseError struct {
	Spec string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("font spec %q: %v", e.Spec, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Bounds holds the accepted point size range and the size substituted when a
// spec carries no usable size.
type Bounds struct {
	Min     float64
	Max     float64
	Default float64
}

// Clamp returns size, or the default size when size lies outside [Min, Max].
func (b Bounds) Clamp(size float64) float64 {
	if math.IsNaN(size) || size < b.Min || size > b.Max {
		return b.Default
	}
	return size
}

// Request is a structurally valid spec split into its fields.
type Request struct {
	Family string
	Size   float64
}

// Escape replaces spaces with underscores.
func Escape(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// Unescape replaces underscores with spaces.
func Unescape(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// Format returns the canonical wire form of f. The size is rounded to whole
// points, the same way Parse reads it back.
func Format(f entity.Font) string {
	return Escape(f.Family) + fieldSeparator + sizePrefix + strconv.Itoa(int(math.Round(f.Size)))
}

// FromFont converts f into the remote option for slot.
func FromFont(f entity.Font, slot entity.FontSlot) entity.RemoteOption {
	return entity.NewRemoteOption(slot, Format(f))
}

// Matches reports whether spec, once its spaces are escaped, equals the
// canonical wire form of current.
func Matches(current entity.Font, spec string) bool {
	return Format(current) == Escape(spec)
}

// Parse validates spec and extracts the family name and point size.
// A missing or unparsable size, or one outside b, resolves to b.Default.
func Parse(spec string, b Bounds) (Request, error) {
	fields := strings.Split(spec, fieldSeparator)
	if len(fields) != 2 {
		return Request{}, &ParseError{Spec: spec, Err: ErrMalformed}
	}

	return Request{
		Family: Unescape(fields[0]),
		Size:   parseSize(fields[1], b),
	}, nil
}

func parseSize(field string, b Bounds) float64 {
	if !strings.HasPrefix(field, sizePrefix) || len(field) < 2 {
		return b.Default
	}

	parsed, err := strconv.ParseFloat(field[len(sizePrefix):], 64)
	if err != nil || math.IsNaN(parsed) {
		return b.Default
	}

	return b.Clamp(math.Round(parsed))
}
