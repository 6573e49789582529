package controller

// Binding is a two-way boolean cell consumed by the rendering layer: the
// getter decides whether an overlay or navigation destination is mounted,
// the setter reports user-driven dismissal (swipe, esc, back) back to the
// core.
type Binding struct {
	Get func() bool
	Set func(bool)
}

// IsPresentingMode returns a binding over the (controller, mode) slot.
// Setting it true is a no-op: the engine cannot synthesize a controller on
// the rendering layer's behalf, activation happens only through Present or
// Show. Setting it false dismisses the slot's occupant.
func (vc *ViewController) IsPresentingMode(mode Mode) Binding {
	return vc.IsPresenting(mode, nil)
}

// IsPresenting generalizes IsPresentingMode with a predicate over the
// presented controller; a nil predicate accepts anything. Used to build
// type-filtered bindings, see IsPresentingType.
func (vc *ViewController) IsPresenting(mode Mode, pred func(Controller) bool) Binding {
	match := func() *Presentation {
		rec := vc.ActivePresentation(mode)
		if rec == nil {
			return nil
		}
		if pred != nil && !pred(rec.Controller()) {
			return nil
		}
		return rec
	}
	return Binding{
		Get: func() bool {
			return match() != nil
		},
		Set: func(active bool) {
			if active {
				logger.Warn("binding: activation via binding is not supported",
					"presenter", vc.self().Description(), "mode", mode.String())
				return
			}
			if rec := match(); rec != nil {
				rec.Controller().Dismiss()
			}
		},
	}
}

// IsPresentingType returns a binding that is true only while the slot's
// occupant is a T (unwrapping type-erased controllers first).
func IsPresentingType[T Controller](presenter Controller, mode Mode) Binding {
	return presenter.IsPresenting(mode, func(c Controller) bool {
		_, ok := Unwrap(c).(T)
		return ok
	})
}

// PresentedController returns the slot's occupant as a T. Total: a mismatch
// or empty slot reports false, never panics.
func PresentedController[T Controller](presenter Controller, mode Mode) (T, bool) {
	var zero T
	if presenter == nil {
		return zero, false
	}
	rec := presenter.ActivePresentation(mode)
	if rec == nil {
		return zero, false
	}
	t, ok := Unwrap(rec.Controller()).(T)
	if !ok {
		return zero, false
	}
	return t, true
}
