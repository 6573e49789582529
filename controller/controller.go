package controller

import (
	"fmt"

	"github.com/google/uuid"
)

// Controller is the capability set every controller implements. Concrete
// controllers embed *ViewController, which provides all of it; the interface
// is sealed on the storage accessor so heterogeneous controllers still share
// one state-cell layout.
type Controller interface {
	// Identity and basic state.
	ID() uuid.UUID
	Title() string
	SetTitle(string)
	ModalPresentationStyle() Mode
	SetModalPresentationStyle(Mode)
	RepresentedObject() any
	SetRepresentedObject(any)
	ContentView() Content

	// Presentation.
	Present(target Controller, mode Mode)
	Dismiss()
	Show(target Controller)
	ShowDetail(target Controller)
	Presentations() []Presentation
	ActivePresentation(mode Mode) *Presentation
	PresentationFor(target Controller) *Presentation
	PresentingViewController() Controller
	IsPresentingMode(mode Mode) Binding
	IsPresenting(mode Mode, pred func(Controller) bool) Binding
	ModalPresentationMode(target Controller) Mode

	// Containment. Orthogonal to presentation.
	Parent() Controller
	Children() []Controller
	AddChild(child Controller)
	RemoveFromParent()

	Changed() *Signal
	Description() string

	cell() *storage
}

// WillAppearer is implemented by controllers that want a hook before the
// host has mounted them. It is a "will" hook, not "did": the UI is not on
// screen yet when it runs.
type WillAppearer interface {
	WillAppear()
}

// WillDisappearer is the dismissal counterpart of WillAppearer.
type WillDisappearer interface {
	WillDisappear()
}

// ViewController is the concrete base every controller embeds. The zero
// value is ready to use; state is allocated on first access.
type ViewController struct {
	st *storage
}

// New returns a standalone controller with the given title.
func New(title string) *ViewController {
	vc := &ViewController{}
	if title != "" {
		vc.cell().title = title
	}
	return vc
}

// Extend records outer as the controller's public identity. Controllers that
// embed ViewController and override interface methods should call it once
// after construction, so back-references and the Show walk dispatch through
// the outer type.
func (vc *ViewController) Extend(outer Controller) {
	if outer == nil {
		return
	}
	vc.cell().self = outer
}

func (vc *ViewController) cell() *storage {
	if vc.st == nil {
		vc.st = newStorage()
	}
	return vc.st
}

// self returns the controller's public identity: the extended outer value
// when set, the base itself otherwise.
func (vc *ViewController) self() Controller {
	if s := vc.cell().self; s != nil {
		return s
	}
	return vc
}

func (vc *ViewController) ID() uuid.UUID { return vc.cell().id }

func (vc *ViewController) Title() string         { return vc.cell().title }
func (vc *ViewController) SetTitle(title string) { vc.cell().setTitle(title) }

func (vc *ViewController) ModalPresentationStyle() Mode     { return vc.cell().style }
func (vc *ViewController) SetModalPresentationStyle(m Mode) { vc.cell().setStyle(m) }

func (vc *ViewController) RepresentedObject() any     { return vc.cell().represented }
func (vc *ViewController) SetRepresentedObject(v any) { vc.cell().setRepresented(v) }

// ContentView returns nil; controllers with content override it. A nil
// content view makes the automatic presentation mode resolve to custom.
func (vc *ViewController) ContentView() Content { return nil }

func (vc *ViewController) Changed() *Signal { return &vc.cell().changed }

func (vc *ViewController) Parent() Controller { return vc.cell().parent }

func (vc *ViewController) Children() []Controller {
	s := vc.cell()
	out := make([]Controller, len(s.children))
	copy(out, s.children)
	return out
}

// AddChild adopts child into the containment tree, detaching it from a
// previous parent first. Parent and children links move in lock-step.
func (vc *ViewController) AddChild(child Controller) {
	self := vc.self()
	if child == nil {
		return
	}
	if sameController(child, self) {
		logger.Warn("addChild: controller cannot contain itself", "controller", self.Description())
		return
	}
	s := vc.cell()
	for _, c := range s.children {
		if sameController(c, child) {
			logger.Warn("addChild: already a child", "controller", self.Description(), "child", child.Description())
			return
		}
	}
	if p := child.Parent(); p != nil {
		logger.Warn("addChild: child already has a parent, detaching", "child", child.Description(), "parent", p.Description())
		child.RemoveFromParent()
	}
	next := make([]Controller, len(s.children), len(s.children)+1)
	copy(next, s.children)
	s.setChildren(append(next, child))
	child.cell().setParent(self)
}

// RemoveFromParent detaches the controller from its parent. A no-op when it
// has none.
func (vc *ViewController) RemoveFromParent() {
	s := vc.cell()
	parent := s.parent
	if parent == nil {
		return
	}
	self := vc.self()
	ps := parent.cell()
	kept := make([]Controller, 0, len(ps.children))
	for _, c := range ps.children {
		if !sameController(c, self) {
			kept = append(kept, c)
		}
	}
	ps.setChildren(kept)
	s.setParent(nil)
}

// Description identifies the controller in logs and diagnostics.
func (vc *ViewController) Description() string {
	s := vc.cell()
	short := s.id.String()[:8]
	if s.title == "" {
		return fmt.Sprintf("<controller %s>", short)
	}
	return fmt.Sprintf("<controller %s %q>", short, s.title)
}
