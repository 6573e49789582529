package controller

import "github.com/google/uuid"

// AnyController erases a controller's concrete type behind a uniform runtime
// value, for heterogeneous storage. Every operation forwards 1:1 to the
// wrapped controller; the wrapper carries no state of its own beyond a
// change signal that re-broadcasts the wrapped controller's.
type AnyController struct {
	wrapped Controller
	changed Signal
	cancel  func()
}

// NewAny wraps c. Wrapping a wrapper unwraps to the original concrete
// controller first, preserving a single subscription hop.
func NewAny(c Controller) *AnyController {
	if c == nil {
		return nil
	}
	for {
		w, ok := c.(*AnyController)
		if !ok {
			break
		}
		c = w.wrapped
	}
	a := &AnyController{wrapped: c}
	a.cancel = c.Changed().Subscribe(a.changed.Emit)
	return a
}

// Unwrap returns the concrete controller behind c, or c itself when it is
// not type-erased.
func Unwrap(c Controller) Controller {
	for {
		w, ok := c.(*AnyController)
		if !ok {
			return c
		}
		c = w.wrapped
	}
}

// Underlying returns the wrapped controller.
func (a *AnyController) Underlying() Controller { return a.wrapped }

// Release drops the wrapper's subscription to the wrapped controller.
func (a *AnyController) Release() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// Changed returns the wrapper's own signal, which re-emits whenever the
// wrapped controller's signal fires. Observers never need the concrete type.
func (a *AnyController) Changed() *Signal { return &a.changed }

func (a *AnyController) cell() *storage { return a.wrapped.cell() }

func (a *AnyController) ID() uuid.UUID { return a.wrapped.ID() }

func (a *AnyController) Title() string         { return a.wrapped.Title() }
func (a *AnyController) SetTitle(title string) { a.wrapped.SetTitle(title) }

func (a *AnyController) ModalPresentationStyle() Mode     { return a.wrapped.ModalPresentationStyle() }
func (a *AnyController) SetModalPresentationStyle(m Mode) { a.wrapped.SetModalPresentationStyle(m) }

func (a *AnyController) RepresentedObject() any     { return a.wrapped.RepresentedObject() }
func (a *AnyController) SetRepresentedObject(v any) { a.wrapped.SetRepresentedObject(v) }

func (a *AnyController) ContentView() Content { return a.wrapped.ContentView() }

func (a *AnyController) Present(target Controller, mode Mode) { a.wrapped.Present(target, mode) }
func (a *AnyController) Dismiss()                             { a.wrapped.Dismiss() }
func (a *AnyController) Show(target Controller)               { a.wrapped.Show(target) }
func (a *AnyController) ShowDetail(target Controller)         { a.wrapped.ShowDetail(target) }

func (a *AnyController) Presentations() []Presentation { return a.wrapped.Presentations() }

func (a *AnyController) ActivePresentation(mode Mode) *Presentation {
	return a.wrapped.ActivePresentation(mode)
}

func (a *AnyController) PresentationFor(target Controller) *Presentation {
	return a.wrapped.PresentationFor(target)
}

func (a *AnyController) PresentingViewController() Controller {
	return a.wrapped.PresentingViewController()
}

func (a *AnyController) IsPresentingMode(mode Mode) Binding {
	return a.wrapped.IsPresentingMode(mode)
}

func (a *AnyController) IsPresenting(mode Mode, pred func(Controller) bool) Binding {
	return a.wrapped.IsPresenting(mode, pred)
}

func (a *AnyController) ModalPresentationMode(target Controller) Mode {
	return a.wrapped.ModalPresentationMode(target)
}

func (a *AnyController) Parent() Controller        { return a.wrapped.Parent() }
func (a *AnyController) Children() []Controller    { return a.wrapped.Children() }
func (a *AnyController) AddChild(child Controller) { a.wrapped.AddChild(child) }
func (a *AnyController) RemoveFromParent()         { a.wrapped.RemoveFromParent() }

func (a *AnyController) Description() string { return a.wrapped.Description() }

// Lifecycle hooks forward too, so an erased controller keeps its hooks when
// it is the one being presented.

func (a *AnyController) WillAppear() {
	if h, ok := a.wrapped.(WillAppearer); ok {
		h.WillAppear()
	}
}

func (a *AnyController) WillDisappear() {
	if h, ok := a.wrapped.(WillDisappearer); ok {
		h.WillDisappear()
	}
}
