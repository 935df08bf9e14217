package entity

// Remote option names as known by the editor engine.
const (
	OptionGuiFont     = "guifont"
	OptionGuiFontWide = "guifontwide"
)

// RemoteOption is one of the editor engine options the host keeps in sync.
// The set is closed: only GuiFont and GuiFontWide implement it.
type RemoteOption interface {
	// Name returns the engine option name.
	Name() string
	// FontSpec returns the wire-form font specification carried by the option.
	FontSpec() string
	// Slot returns the font slot the option targets.
	Slot() FontSlot

	remoteOption()
}

// GuiFont carries the primary font specification.
type GuiFont struct {
	Spec string
}

// GuiFontWide carries the wide glyph font specification.
type GuiFontWide struct {
	Spec string
}

func (GuiFont) Name() string       { return OptionGuiFont }
func (o GuiFont) FontSpec() string { return o.Spec }
func (GuiFont) Slot() FontSlot     { return SlotPrimary }
func (GuiFont) remoteOption()      {}

func (GuiFontWide) Name() string       { return OptionGuiFontWide }
func (o GuiFontWide) FontSpec() string { return o.Spec }
func (GuiFontWide) Slot() FontSlot     { return SlotWide }
func (GuiFontWide) remoteOption()      {}

// NewRemoteOption returns the option variant for slot carrying spec.
func NewRemoteOption(slot FontSlot, spec string) RemoteOption {
	if slot == SlotWide {
		return GuiFontWide{Spec: spec}
	}
	return GuiFont{Spec: spec}
}

// RemoteOptionFromValuePair classifies one entry of an engine option batch.
// Names match case-sensitively. A value that is not a string is treated as
// the empty spec. ok is false for options the host does not handle.
func RemoteOptionFromValuePair(name string, value any) (opt RemoteOption, ok bool) {
	spec := stringValue(value)

	switch name {
	case OptionGuiFont:
		return GuiFont{Spec: spec}, true
	case OptionGuiFontWide:
		return GuiFontWide{Spec: spec}, true
	default:
		return nil, false
	}
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}
