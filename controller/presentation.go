package controller

// RenderContext carries layout and presentation context down to content
// views, so inner UI can adapt to how it is being shown (for example add an
// explicit close affordance when not in a sheet).
type RenderContext struct {
	Width  int
	Height int
	// Mode is the resolved mode of the presentation the content belongs to.
	// Content that is not presented (a root controller) sees ModeAutomatic.
	Mode Mode
}

// Content is what a controller contributes to the screen. The host renders
// it; the core only stores it.
type Content interface {
	Render(ctx RenderContext) string
}

// ContentFunc adapts a plain function to Content.
type ContentFunc func(ctx RenderContext) string

func (f ContentFunc) Render(ctx RenderContext) string { return f(ctx) }

// Presentation records that a presenter is showing a controller in a mode.
// The content view is captured when the presentation is committed, so a
// dismissal racing a view-tree re-evaluation can never observe a
// type-mismatched view; at worst the host renders one stale frame.
type Presentation struct {
	controller Controller
	mode       Mode
	content    Content
}

// Controller returns the presented controller.
func (p Presentation) Controller() Controller { return p.controller }

// Mode returns the resolved presentation mode. Never ModeAutomatic.
func (p Presentation) Mode() Mode { return p.mode }

// Content returns the content view captured at present time. Nil when the
// presented controller had none; the host shows a diagnostic panel then.
func (p Presentation) Content() Content { return p.content }

func samePresentation(a, b Presentation) bool {
	return a.mode == b.mode && sameController(a.controller, b.controller)
}

func samePresentations(a, b []Presentation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !samePresentation(a[i], b[i]) {
			return false
		}
	}
	return true
}
