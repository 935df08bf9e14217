// Package view holds the session-owned editor view state.
package view

import (
	"context"
	"sync"

	"github.com/bnema/dumbvim/internal/application/port"
	"github.com/bnema/dumbvim/internal/domain/entity"
	"github.com/bnema/dumbvim/internal/logging"
	"github.com/bnema/dumbvim/internal/ui/mainloop"
)

const (
	renderWholeViewKey = "render-whole-view"
	subscriberBuffer   = 16
)

// EditorView owns the live grid font. Writes happen on the UI loop only;
// Font may be read from any goroutine.
type EditorView struct {
	ctx      context.Context
	renderer port.Renderer
	render   *mainloop.Coalescer

	fontMu sync.RWMutex
	font   entity.Font

	subMu       sync.Mutex
	subscribers []chan entity.ViewEvent
}

// New creates a view starting with initial. post schedules work on the UI loop.
// initial must be a resolved font: the view echoes it to the engine on connect.
func New(ctx context.Context, initial entity.Font, renderer port.Renderer, post func(func())) *EditorView {
	if initial.IsZero() {
		panic("view.New: initial font cannot be zero")
	}
	return &EditorView{
		ctx:      logging.WithComponent(ctx, "view"),
		renderer: renderer,
		render:   mainloop.NewCoalescer(post),
		font:     initial,
	}
}

// Font implements port.FontView.
func (v *EditorView) Font() entity.Font {
	v.fontMu.RLock()
	defer v.fontMu.RUnlock()
	return v.font
}

// SetFont implements port.FontView.
func (v *EditorView) SetFont(font entity.Font) {
	v.fontMu.Lock()
	v.font = font
	v.fontMu.Unlock()
}

// MarkForRenderWholeView implements port.FontView. Repeated marks before the
// render runs collapse into one render.
func (v *EditorView) MarkForRenderWholeView() {
	v.render.Post(renderWholeViewKey, func() {
		if v.renderer != nil {
			v.renderer.RenderWholeView(v.ctx, v.Font())
		}
	})
}

// Subscribe returns a channel receiving view events. Events are dropped for a
// subscriber whose buffer is full.
func (v *EditorView) Subscribe() <-chan entity.ViewEvent {
	ch := make(chan entity.ViewEvent, subscriberBuffer)

	v.subMu.Lock()
	v.subscribers = append(v.subscribers, ch)
	v.subMu.Unlock()

	return ch
}

// Emit implements port.ViewEventEmitter.
func (v *EditorView) Emit(event entity.ViewEvent) {
	v.subMu.Lock()
	defer v.subMu.Unlock()

	for _, ch := range v.subscribers {
		select {
		case ch <- event:
		default:
			logging.FromContext(v.ctx).Warn().
				Type("event", event).
				Msg("view event dropped, subscriber is not keeping up")
		}
	}
}

// Close stops pending renders and closes all subscriber channels.
func (v *EditorView) Close() {
	v.render.Destroy()

	v.subMu.Lock()
	for _, ch := range v.subscribers {
		close(ch)
	}
	v.subscribers = nil
	v.subMu.Unlock()
}
