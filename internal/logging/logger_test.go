package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestWithComponentTagsEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithComponent(WithContext(context.Background(), logger), "fontsync")
	FromContext(ctx).Debug().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"fontsync"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestFromContextWithoutLoggerIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}
