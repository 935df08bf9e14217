package fonts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbvim/internal/application/port"
	"github.com/bnema/dumbvim/internal/domain/entity"
)

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

type staticDetector struct {
	fonts []string
	err   error
}

func (d staticDetector) GetAvailableFonts(context.Context) ([]string, error) { return d.fonts, d.err }

func (d staticDetector) SelectBestFont(_ context.Context, category port.FontCategory, _ []string) string {
	return genericFallback(category)
}

func (staticDetector) IsAvailable(context.Context) bool { return true }

func TestResolver_ResolvesInstalledFamily(t *testing.T) {
	ctx := testContext()
	r := NewResolver(staticDetector{fonts: []string{"Menlo", "Fira Code"}}, []string{})

	font, err := r.Resolve(ctx, "Fira Code", 13)
	require.NoError(t, err)
	assert.Equal(t, entity.Font{Family: "Fira Code", Size: 13}, font)
}

func TestResolver_MatchIsCaseInsensitive(t *testing.T) {
	ctx := testContext()
	r := NewResolver(staticDetector{fonts: []string{"Menlo"}}, []string{})

	font, err := r.Resolve(ctx, "menlo", 12)
	require.NoError(t, err)
	assert.Equal(t, "Menlo", font.Family)
}

func TestResolver_GenericFamiliesAlwaysResolve(t *testing.T) {
	ctx := testContext()
	r := NewResolver(staticDetector{}, []string{})

	for _, family := range []string{"monospace", "Monospace", "sans-serif", "serif"} {
		_, err := r.Resolve(ctx, family, 12)
		assert.NoError(t, err, family)
	}
}

func TestResolver_UnknownFamily(t *testing.T) {
	ctx := testContext()
	r := NewResolver(staticDetector{fonts: []string{"Menlo", "JetBrains Mono"}}, []string{})

	_, err := r.Resolve(ctx, "DoesNotExist", 13)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFamily))
}

func TestResolver_UnknownFamilySuggestsClosest(t *testing.T) {
	ctx := testContext()
	r := NewResolver(staticDetector{fonts: []string{"Menlo", "JetBrains Mono"}}, []string{})

	_, err := r.Resolve(ctx, "JetBrains", 13)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "JetBrains Mono"`)
}

func TestResolver_InvalidSize(t *testing.T) {
	ctx := testContext()
	r := NewResolver(staticDetector{fonts: []string{"Menlo"}}, []string{})

	_, err := r.Resolve(ctx, "Menlo", 0)
	assert.True(t, errors.Is(err, ErrInvalidSize))

	_, err = r.Resolve(ctx, "Menlo", -3)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestResolver_FallsBackToFontFiles(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.ttf"), []byte("not a font"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	r := NewResolver(staticDetector{err: errors.New("fc-list missing")}, []string{dir, filepath.Join(dir, "missing")})

	assert.Empty(t, r.Families(ctx))
	_, err := r.Resolve(ctx, "Menlo", 13)
	assert.True(t, errors.Is(err, ErrUnknownFamily))
}

func TestResolver_Filter(t *testing.T) {
	ctx := testContext()
	r := NewResolver(staticDetector{fonts: []string{"Menlo", "DejaVu Sans Mono", "Noto Sans Mono", "Noto Serif"}}, []string{})

	assert.Len(t, r.Filter(ctx, ""), 4)

	matches := r.Filter(ctx, "mono")
	assert.ElementsMatch(t, []string{"DejaVu Sans Mono", "Noto Sans Mono"}, matches)
}

func TestParseFamilies(t *testing.T) {
	output := []byte("DejaVu Sans,DejaVu Sans Light\nMenlo\n\n  Fira Code \nMenlo\n")

	families, err := parseFamilies(output)
	require.NoError(t, err)
	assert.Equal(t, []string{"DejaVu Sans", "DejaVu Sans Light", "Menlo", "Fira Code"}, families)
}

func TestDetector_SelectBestFont(t *testing.T) {
	ctx := testContext()
	detector := NewDetector()

	if !detector.IsAvailable(ctx) {
		t.Skip("fc-list not available on this system")
	}

	font := detector.SelectBestFont(ctx, port.FontCategoryMonospace, MonospaceFallbackChain())
	assert.NotEmpty(t, font)
	t.Logf("Selected monospace font: %s", font)
}

func TestFallbackChainsReturnCopies(t *testing.T) {
	chain := MonospaceFallbackChain()
	chain[0] = "Modified"

	assert.NotEqual(t, "Modified", MonospaceFallbackChain()[0])
}
