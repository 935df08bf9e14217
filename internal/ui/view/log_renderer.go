package view

import (
	"context"

	"github.com/bnema/dumbvim/internal/domain/entity"
	"github.com/bnema/dumbvim/internal/logging"
)

// LogRenderer implements port.Renderer for headless sessions by logging each
// full redraw.
type LogRenderer struct{}

func NewLogRenderer() *LogRenderer {
	return &LogRenderer{}
}

func (*LogRenderer) RenderWholeView(ctx context.Context, font entity.Font) {
	logging.FromContext(ctx).Debug().Str("font", font.String()).Msg("render whole view")
}
