package entity

// ViewEvent is emitted by an editor view to UI observers.
type ViewEvent interface {
	viewEvent()
}

// GuifontChanged is emitted after a new font was applied to the view.
type GuifontChanged struct {
	Font Font
}

func (GuifontChanged) viewEvent() {}
