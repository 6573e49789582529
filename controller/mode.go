package controller

// Mode tags how a controller is shown by its presenter.
type Mode int

const (
	// ModeAutomatic asks the engine to resolve a concrete mode. It is a
	// request value only; a committed presentation never carries it.
	ModeAutomatic Mode = iota
	// ModeCustom means the application mounts the content itself through a
	// presentation site it declared; the host does not mount anything.
	ModeCustom
	// ModeSheet mounts the content as a modal overlay card.
	ModeSheet
	// ModeNavigation pushes the content onto a navigation chain.
	ModeNavigation
	// ModePushLink is a navigation push driven by a PushLink helper.
	ModePushLink
)

func (m Mode) String() string {
	switch m {
	case ModeAutomatic:
		return "automatic"
	case ModeCustom:
		return "custom"
	case ModeSheet:
		return "sheet"
	case ModeNavigation:
		return "navigation"
	case ModePushLink:
		return "pushLink"
	default:
		return "unknown"
	}
}
