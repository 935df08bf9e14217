package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/dumbvim/internal/application/port/mocks"
	"github.com/bnema/dumbvim/internal/domain/entity"
	"github.com/bnema/dumbvim/internal/infrastructure/config"
)

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

type recordingApplier struct {
	fonts []entity.Font
}

func (r *recordingApplier) ApplyLocalFont(_ context.Context, font entity.Font) {
	r.fonts = append(r.fonts, font)
}

func TestFontPreferences_AppliesChangedFont(t *testing.T) {
	ctx := testContext()
	resolver := mocks.NewMockFontResolver(t)
	applier := &recordingApplier{}

	prefs := &fontPreferences{
		last:     config.FontConfig{Family: "Menlo", Size: 13},
		resolver: resolver,
		applier:  applier,
	}

	fira := entity.Font{Family: "Fira Code", Size: 14}
	resolver.EXPECT().Resolve(mock.Anything, "Fira Code", 14.0).Return(fira, nil).Once()

	prefs.update(ctx, config.FontConfig{Family: "Fira Code", Size: 14})

	assert.Equal(t, []entity.Font{fira}, applier.fonts)
}

func TestFontPreferences_IgnoresUnrelatedChanges(t *testing.T) {
	ctx := testContext()
	resolver := mocks.NewMockFontResolver(t)
	applier := &recordingApplier{}

	prefs := &fontPreferences{
		last:     config.FontConfig{Family: "Menlo", Size: 13, MaxSize: 128},
		resolver: resolver,
		applier:  applier,
	}

	prefs.update(ctx, config.FontConfig{Family: "Menlo", Size: 13, MaxSize: 96})

	assert.Empty(t, applier.fonts)
}

func TestFontPreferences_UnresolvableFontIsSkipped(t *testing.T) {
	ctx := testContext()
	resolver := mocks.NewMockFontResolver(t)
	applier := &recordingApplier{}

	prefs := &fontPreferences{
		last:     config.FontConfig{Family: "Menlo", Size: 13},
		resolver: resolver,
		applier:  applier,
	}

	resolver.EXPECT().Resolve(mock.Anything, "Nope", 13.0).Return(entity.Font{}, errors.New("unknown")).Once()

	prefs.update(ctx, config.FontConfig{Family: "Nope", Size: 13})
	prefs.update(ctx, config.FontConfig{Family: "Nope", Size: 13})

	assert.Empty(t, applier.fonts)
}

func TestInitialFont_FallsBackToGenericMonospace(t *testing.T) {
	ctx := testContext()
	resolver := mocks.NewMockFontResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, "Missing", 15.0).Return(entity.Font{}, errors.New("unknown")).Once()

	font := initialFont(ctx, resolver, config.FontConfig{Family: "Missing", Size: 15})

	assert.Equal(t, entity.Font{Family: "monospace", Size: 15}, font)
}

func TestEngineEndpoint(t *testing.T) {
	assert.Equal(t, "nvim", engineEndpoint(config.EngineConfig{Command: "nvim"}))
	assert.Equal(t, "/tmp/nvim.sock", engineEndpoint(config.EngineConfig{Command: "nvim", Address: "/tmp/nvim.sock"}))
}

func TestRunEditor_RequiresConfig(t *testing.T) {
	assert.Error(t, RunEditor(testContext(), EditorOptions{}))
}
