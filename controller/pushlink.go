package controller

// PushLink is a leaf helper driving a push-link presentation from a source
// controller. The target is built lazily on first activation and the
// instance is reused across toggle cycles. The source's active-presentation
// list is authoritative for activity reads: the link counts as active only
// while the slot holds the instance it built itself.
type PushLink struct {
	source Controller
	build  func() Controller
	cached Controller
}

// NewPushLink binds a link to source. build runs at most once per cached
// instance, on first activation.
func NewPushLink(source Controller, build func() Controller) *PushLink {
	return &PushLink{source: source, build: build}
}

// Target returns the instance this link built, or nil when it was never
// activated. The source's slot occupant is never adopted: a presentation
// made by another link (or by Present directly) does not belong to this one,
// even while it holds the slot.
func (l *PushLink) Target() Controller {
	return l.cached
}

// Activate presents the link's target on the source. A second activation
// reuses the cached instance rather than constructing a new one; if another
// link occupies the slot, Present evicts it (last writer wins).
func (l *PushLink) Activate() {
	if l.source == nil || l.build == nil {
		return
	}
	if rec := l.source.ActivePresentation(ModePushLink); rec != nil {
		if l.cached != nil && sameController(rec.Controller(), l.cached) {
			return
		}
	}
	if l.cached == nil {
		l.cached = l.build()
	}
	l.source.Present(l.cached, ModePushLink)
}

// IsActive returns a two-way binding over the link. Unlike IsPresentingMode,
// setting it true activates the link: the link owns the factory, so it can
// synthesize the destination the rendering layer cannot.
func (l *PushLink) IsActive() Binding {
	return Binding{
		Get: func() bool {
			if l.source == nil {
				return false
			}
			rec := l.source.ActivePresentation(ModePushLink)
			return rec != nil && l.cached != nil && sameController(rec.Controller(), l.cached)
		},
		Set: func(active bool) {
			if active {
				l.Activate()
				return
			}
			if l.source == nil {
				return
			}
			rec := l.source.ActivePresentation(ModePushLink)
			if rec != nil && l.cached != nil && sameController(rec.Controller(), l.cached) {
				rec.Controller().Dismiss()
			}
		},
	}
}
