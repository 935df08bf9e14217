package port

import (
	"context"

	"github.com/bnema/dumbvim/internal/domain/entity"
)

// FontView is the session-owned view holding the live font.
// SetFont and MarkForRenderWholeView must only be called on the UI context.
type FontView interface {
	Font() entity.Font
	SetFont(font entity.Font)
	MarkForRenderWholeView()
}

// ViewEventEmitter publishes view events to UI observers.
type ViewEventEmitter interface {
	Emit(event entity.ViewEvent)
}

// Renderer redraws the full grid content with the given font.
type Renderer interface {
	RenderWholeView(ctx context.Context, font entity.Font)
}
