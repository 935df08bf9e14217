package fonts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/image/font/sfnt"

	"github.com/bnema/dumbvim/internal/application/port"
	"github.com/bnema/dumbvim/internal/domain/entity"
	"github.com/bnema/dumbvim/internal/logging"
)

var (
	// ErrUnknownFamily is returned when no installed font has the family name.
	ErrUnknownFamily = errors.New("unknown font family")
	// ErrInvalidSize is returned for sizes that cannot be rendered.
	ErrInvalidSize = errors.New("invalid font size")
)

// Resolver implements port.FontResolver against the installed fonts.
// Families come from the detector and, as a fallback, from the name table of
// font files found under the font directories.
type Resolver struct {
	detector port.FontDetector
	dirs     []string

	once     sync.Once
	families []string
	index    map[string]string // lower-cased family -> installed name
}

// NewResolver creates a resolver. When dirs is nil the platform font
// directories are scanned.
func NewResolver(detector port.FontDetector, dirs []string) *Resolver {
	if dirs == nil {
		dirs = DefaultFontDirs()
	}
	return &Resolver{
		detector: detector,
		dirs:     dirs,
	}
}

// DefaultFontDirs returns the per-user and system font directories.
func DefaultFontDirs() []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/Library/Fonts",
		"/System/Library/Fonts",
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return dirs
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	return append(dirs,
		filepath.Join(dataHome, "fonts"),
		filepath.Join(home, ".fonts"),
		filepath.Join(home, "Library", "Fonts"),
	)
}

// Resolve implements port.FontResolver.
func (r *Resolver) Resolve(ctx context.Context, family string, size float64) (entity.Font, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return entity.Font{}, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	switch strings.ToLower(family) {
	case GenericMonospace, GenericSansSerif, GenericSerif:
		return entity.Font{Family: strings.ToLower(family), Size: size}, nil
	}

	r.once.Do(func() { r.load(ctx) })

	if name, ok := r.index[strings.ToLower(family)]; ok {
		return entity.Font{Family: name, Size: size}, nil
	}

	if suggestion := r.Suggest(family); suggestion != "" {
		logging.FromContext(ctx).Debug().
			Str("family", family).
			Str("suggestion", suggestion).
			Msg("font family not installed")
		return entity.Font{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownFamily, family, suggestion)
	}
	return entity.Font{}, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
}

// Families returns the installed family names, sorted.
func (r *Resolver) Families(ctx context.Context) []string {
	r.once.Do(func() { r.load(ctx) })

	result := make([]string, len(r.families))
	copy(result, r.families)
	return result
}

// Suggest returns the installed family closest to family, or "".
func (r *Resolver) Suggest(family string) string {
	ranks := fuzzy.RankFindNormalizedFold(family, r.families)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// Filter returns installed families fuzzy-matching query, best match first.
func (r *Resolver) Filter(ctx context.Context, query string) []string {
	families := r.Families(ctx)
	if strings.TrimSpace(query) == "" {
		return families
	}

	ranks := fuzzy.RankFindNormalizedFold(query, families)
	sort.Sort(ranks)

	result := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, rank.Target)
	}
	return result
}

func (r *Resolver) load(ctx context.Context) {
	log := logging.FromContext(ctx)
	r.index = make(map[string]string)

	if r.detector != nil && r.detector.IsAvailable(ctx) {
		detected, err := r.detector.GetAvailableFonts(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("font detector failed, scanning font files")
		}
		for _, family := range detected {
			r.add(family)
		}
	}

	if len(r.index) == 0 {
		for _, family := range scanFontFiles(ctx, r.dirs) {
			r.add(family)
		}
	}

	sort.Strings(r.families)
	log.Debug().Int("families", len(r.families)).Msg("font index loaded")
}

func (r *Resolver) add(family string) {
	key := strings.ToLower(family)
	if _, exists := r.index[key]; exists {
		return
	}
	r.index[key] = family
	r.families = append(r.families, family)
}

// scanFontFiles walks dirs and reads the family name of every font file.
func scanFontFiles(ctx context.Context, dirs []string) []string {
	log := logging.FromContext(ctx)
	var families []string
	var buf sfnt.Buffer

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d == nil {
					return fs.SkipDir
				}
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if d.IsDir() {
				return nil
			}

			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".otf", ".ttc", ".otc":
			default:
				return nil
			}

			names, readErr := readFamilyNames(path, &buf)
			if readErr != nil {
				log.Trace().Err(readErr).Str("path", path).Msg("skipping unreadable font file")
				return nil
			}
			families = append(families, names...)
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Debug().Err(err).Str("dir", dir).Msg("font directory scan stopped")
		}
	}

	return families
}

func readFamilyNames(path string, buf *sfnt.Buffer) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	collection, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}

	names := make([]string, 0, collection.NumFonts())
	for i := 0; i < collection.NumFonts(); i++ {
		f, err := collection.Font(i)
		if err != nil {
			return nil, fmt.Errorf("font %d of %s: %w", i, path, err)
		}
		name, err := f.Name(buf, sfnt.NameIDFamily)
		if err != nil {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}
