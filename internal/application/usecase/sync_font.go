// Package usecase contains application use cases that orchestrate the
// domain and the ports.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumbvim/internal/application/port"
	"github.com/bnema/dumbvim/internal/domain/entity"
	"github.com/bnema/dumbvim/internal/domain/fontspec"
	"github.com/bnema/dumbvim/internal/logging"
)

// ErrCodeInvalidFont is the engine error code reported for rejected font specs.
const ErrCodeInvalidFont = 596

// FormatErrorLine returns the engine error line for code and message.
func FormatErrorLine(code int, message string) string {
	return fmt.Sprintf("E%d: %s", code, message)
}

// InvalidFontMessage returns the message reported when spec is rejected.
func InvalidFontMessage(spec string) string {
	return "Invalid font(s): gufont=" + spec
}

// SyncFontConfig holds the collaborators of SyncFontUseCase that are not ports.
type SyncFontConfig struct {
	// Bounds is the accepted size range and the fallback size.
	Bounds fontspec.Bounds

	// RunOnMainThread schedules fn on the UI execution context. Scheduled
	// functions must run in the order they were posted.
	RunOnMainThread func(fn func())

	// Submit runs an engine request without the caller waiting for it.
	// Defaults to starting a goroutine.
	Submit func(fn func())
}

// SyncFontUseCase keeps the engine's guifont/guifontwide options and the
// view font consistent in both directions.
type SyncFontUseCase struct {
	engine   port.EngineClient
	resolver port.FontResolver
	view     port.FontView
	events   port.ViewEventEmitter

	bounds       fontspec.Bounds
	onMainThread func(fn func())
	submit       func(fn func())
}

// NewSyncFontUseCase creates the font synchronizer.
// cfg.RunOnMainThread is required.
func NewSyncFontUseCase(
	engine port.EngineClient,
	resolver port.FontResolver,
	view port.FontView,
	events port.ViewEventEmitter,
	cfg SyncFontConfig,
) *SyncFontUseCase {
	if cfg.RunOnMainThread == nil {
		panic("usecase.NewSyncFontUseCase: RunOnMainThread cannot be nil")
	}

	submit := cfg.Submit
	if submit == nil {
		submit = func(fn func()) { go fn() }
	}

	return &SyncFontUseCase{
		engine:       engine,
		resolver:     resolver,
		view:         view,
		events:       events,
		bounds:       cfg.Bounds,
		onMainThread: cfg.RunOnMainThread,
		submit:       submit,
	}
}

// HandleRemoteOptions processes one batch of options pushed by the engine.
// Options the host does not track are logged and skipped.
func (uc *SyncFontUseCase) HandleRemoteOptions(ctx context.Context, options map[string]any) {
	log := logging.FromContext(ctx)

	for name, value := range options {
		option, ok := entity.RemoteOptionFromValuePair(name, value)
		if !ok {
			log.Debug().
				Str("option", name).
				Interface("value", value).
				Msg("could not handle remote option")
			continue
		}

		switch opt := option.(type) {
		// FIXME: guifont and guifontwide share the same view font.
		case entity.GuiFont:
			uc.handleGuifontSet(ctx, opt.Spec, entity.SlotPrimary)
		case entity.GuiFontWide:
			uc.handleGuifontSet(ctx, opt.Spec, entity.SlotWide)
		default:
			panic(fmt.Sprintf("usecase: unhandled remote option %T", option))
		}
	}
}

// SignalRemoteOptionChange pushes option to the engine. The request is not
// awaited and transport errors are only logged.
func (uc *SyncFontUseCase) SignalRemoteOptionChange(ctx context.Context, option entity.RemoteOption) {
	var name string
	switch opt := option.(type) {
	case entity.GuiFont:
		name = entity.OptionGuiFont
	case entity.GuiFontWide:
		name = entity.OptionGuiFontWide
	default:
		panic(fmt.Sprintf("usecase: unhandled remote option %T", opt))
	}
	value := option.FontSpec()

	uc.submit(func() {
		if err := uc.engine.SetOption(ctx, name, value); err != nil {
			logging.FromContext(ctx).Debug().
				Err(err).
				Str("option", name).
				Str("value", value).
				Msg("set option request failed")
		}
	})
}

// SignalError writes "E<code>: <message>" to the engine's error output.
func (uc *SyncFontUseCase) SignalError(ctx context.Context, code int, message string) {
	line := FormatErrorLine(code, message)

	uc.submit(func() {
		if err := uc.engine.ErrWriteln(ctx, line); err != nil {
			logging.FromContext(ctx).Debug().
				Err(err).
				Str("line", line).
				Msg("error report request failed")
		}
	})
}

// ApplyLocalFont applies a font chosen on the host side (preferences, config
// file) and pushes it to the engine. The push happens on the UI context after
// the view holds font, so the engine's echo of it is suppressed.
func (uc *SyncFontUseCase) ApplyLocalFont(ctx context.Context, font entity.Font) {
	uc.onMainThread(func() {
		uc.apply(ctx, font)
		uc.SignalRemoteOptionChange(ctx, fontspec.FromFont(font, entity.SlotPrimary))
	})
}

func (uc *SyncFontUseCase) handleGuifontSet(ctx context.Context, spec string, slot entity.FontSlot) {
	log := logging.FromContext(ctx)
	current := uc.view.Font()

	// Empty spec is sent on connect: answer with the current value.
	if spec == "" {
		uc.SignalRemoteOptionChange(ctx, fontspec.FromFont(current, slot))
		return
	}

	if fontspec.Matches(current, spec) {
		return
	}

	req, err := fontspec.Parse(spec, uc.bounds)
	if err != nil {
		log.Debug().Err(err).Str("slot", slot.String()).Msg("invalid specification for guifont")
		uc.rejectSpec(ctx, spec, current, slot)
		return
	}

	font, err := uc.resolver.Resolve(ctx, req.Family, req.Size)
	if err != nil {
		log.Debug().
			Err(err).
			Str("family", req.Family).
			Float64("size", req.Size).
			Msg("no valid font for spec")
		uc.rejectSpec(ctx, spec, current, slot)
		return
	}

	uc.onMainThread(func() {
		uc.apply(ctx, font)
	})
}

// rejectSpec reports spec to the engine and re-asserts the current font so
// the engine does not keep the rejected value.
func (uc *SyncFontUseCase) rejectSpec(ctx context.Context, spec string, current entity.Font, slot entity.FontSlot) {
	uc.SignalError(ctx, ErrCodeInvalidFont, InvalidFontMessage(spec))
	uc.SignalRemoteOptionChange(ctx, fontspec.FromFont(current, slot))
}

// apply must run on the UI context.
func (uc *SyncFontUseCase) apply(ctx context.Context, font entity.Font) {
	uc.view.SetFont(font)
	uc.view.MarkForRenderWholeView()
	uc.events.Emit(entity.GuifontChanged{Font: font})

	logging.FromContext(ctx).Debug().Str("font", font.String()).Msg("guifont applied")
}
