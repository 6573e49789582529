package controller

// The presentation engine. Per (presenter, mode) slot the state machine is
// empty | occupied; a controller has at most one presenter at any time.
// Failures never propagate: programmer errors and out-of-order toggle events
// from the rendering layer are logged and degrade to no-ops, because this
// layer sits under a render pass that cannot unwind.

// resolveMode picks the concrete mode for an automatic request: an explicit
// style wins, a controller without a content view resolves to custom (the
// application must have wired a presentation site), everything else is a
// sheet.
func resolveMode(target Controller) Mode {
	if s := target.ModalPresentationStyle(); s != ModeAutomatic {
		return s
	}
	if target.ContentView() == nil {
		return ModeCustom
	}
	return ModeSheet
}

// ModalPresentationMode reports the mode Present would resolve for target
// without committing a presentation.
func (vc *ViewController) ModalPresentationMode(target Controller) Mode {
	if target == nil {
		return ModeAutomatic
	}
	return resolveMode(target)
}

// Present shows target in the given mode. ModeAutomatic is resolved first.
// If the resolved slot is occupied the occupant is dismissed (last writer
// wins: UI toggles can race, switching between two links may momentarily
// report both active). The content view is captured into the record now.
func (vc *ViewController) Present(target Controller, mode Mode) {
	self := vc.self()
	if target == nil {
		logger.Warn("present: nil target", "presenter", self.Description())
		return
	}
	if sameController(target, self) {
		logger.Warn("present: controller cannot present itself", "controller", self.Description())
		return
	}
	resolved := mode
	if resolved == ModeAutomatic {
		resolved = resolveMode(target)
	}
	if resolved == ModeAutomatic {
		logger.Error("present: mode resolved to automatic", "presenter", self.Description(), "target", target.Description())
		return
	}
	if vc.PresentationFor(target) != nil {
		logger.Warn("present: target already presented by this controller", "presenter", self.Description(), "target", target.Description())
		return
	}
	if p := target.PresentingViewController(); p != nil {
		logger.Warn("present: target presented elsewhere, dismissing first", "target", target.Description(), "presenter", p.Description())
		target.Dismiss()
	}
	if occ := vc.ActivePresentation(resolved); occ != nil {
		logger.Warn("present: mode slot occupied, dismissing occupant",
			"presenter", self.Description(), "mode", resolved.String(), "occupant", occ.Controller().Description())
		occ.Controller().Dismiss()
	}

	rec := Presentation{controller: target, mode: resolved, content: target.ContentView()}
	s := vc.cell()
	next := make([]Presentation, len(s.presentations), len(s.presentations)+1)
	copy(next, s.presentations)
	s.setPresentations(append(next, rec))
	target.cell().setPresenting(self)
	if a, ok := target.(WillAppearer); ok {
		a.WillAppear()
	}
}

// Dismiss ends the controller's own presentation. It is called on the
// presented controller, not the presenter. Dismissing a controller that is
// not presented is a warned no-op.
func (vc *ViewController) Dismiss() {
	self := vc.self()
	s := vc.cell()
	presenter := s.presenting
	if presenter == nil {
		logger.Warn("dismiss: controller is not being presented", "controller", self.Description())
		return
	}
	// Guaranteed: the back-reference is cleared even when the record lookup
	// below finds inconsistent state, so it can never dangle.
	defer s.setPresenting(nil)

	rec := presenter.PresentationFor(self)
	if rec == nil {
		logger.Warn("dismiss: presenter holds no record for controller",
			"controller", self.Description(), "presenter", presenter.Description())
		return
	}
	if d, ok := self.(WillDisappearer); ok {
		d.WillDisappear()
	}
	ps := presenter.cell()
	kept := make([]Presentation, 0, len(ps.presentations))
	for _, p := range ps.presentations {
		if !sameController(p.controller, self) {
			kept = append(kept, p)
		}
	}
	ps.setPresentations(kept)
}

// Presentations returns the active presentation records in insertion order.
func (vc *ViewController) Presentations() []Presentation {
	s := vc.cell()
	out := make([]Presentation, len(s.presentations))
	copy(out, s.presentations)
	return out
}

// ActivePresentation returns the first record matching mode, or the first
// record overall for ModeAutomatic (which never occurs in committed
// records). Nil when the slot is empty.
func (vc *ViewController) ActivePresentation(mode Mode) *Presentation {
	for _, p := range vc.cell().presentations {
		if mode == ModeAutomatic || p.mode == mode {
			rec := p
			return &rec
		}
	}
	return nil
}

// PresentationFor returns the record presenting target, matched by identity.
func (vc *ViewController) PresentationFor(target Controller) *Presentation {
	if target == nil {
		return nil
	}
	for _, p := range vc.cell().presentations {
		if sameController(p.controller, target) {
			rec := p
			return &rec
		}
	}
	return nil
}

// PresentingViewController returns the controller currently presenting this
// one, or nil.
func (vc *ViewController) PresentingViewController() Controller {
	return vc.cell().presenting
}

// Show asks the top of the presentation chain to present target: the call
// walks up through the presenting controller, then the structural parent,
// and the first controller lacking both presents target with an automatic
// mode. Deeply nested controllers can request top-level presentation without
// knowing the topology.
func (vc *ViewController) Show(target Controller) {
	if p := vc.PresentingViewController(); p != nil {
		p.Show(target)
		return
	}
	if p := vc.Parent(); p != nil {
		p.Show(target)
		return
	}
	vc.self().Present(target, ModeAutomatic)
}

// ShowDetail is Show for detail contexts. The base behavior is identical;
// split containers can override it to route into their detail pane.
func (vc *ViewController) ShowDetail(target Controller) {
	if p := vc.PresentingViewController(); p != nil {
		p.ShowDetail(target)
		return
	}
	if p := vc.Parent(); p != nil {
		p.ShowDetail(target)
		return
	}
	vc.self().Present(target, ModeAutomatic)
}
