package controller

import (
	"reflect"

	"github.com/google/uuid"
)

// storage is the per-controller state cell. It is allocated lazily on first
// access; reads before any write see the defaults (empty title, automatic
// style, empty lists). Every setter compares old against new and emits
// exactly one change signal per observable mutation; writes that change
// nothing do not notify.
type storage struct {
	id            uuid.UUID
	title         string
	style         Mode
	represented   any
	presentations []Presentation
	children      []Controller
	changed       Signal

	// Non-owning back-references, kept in lock-step with the owning side by
	// the engine. Never counted for lifetime purposes.
	presenting Controller
	parent     Controller

	// self is the controller's public identity when ViewController is
	// embedded in an outer type. See ViewController.Extend.
	self Controller
}

func newStorage() *storage {
	return &storage{id: uuid.New()}
}

func (s *storage) setTitle(v string) {
	if s.title == v {
		return
	}
	s.title = v
	s.changed.Emit()
}

func (s *storage) setStyle(m Mode) {
	if s.style == m {
		return
	}
	s.style = m
	s.changed.Emit()
}

func (s *storage) setRepresented(v any) {
	if sameAny(s.represented, v) {
		return
	}
	s.represented = v
	s.changed.Emit()
}

func (s *storage) setPresentations(list []Presentation) {
	if samePresentations(s.presentations, list) {
		return
	}
	s.presentations = list
	s.changed.Emit()
}

func (s *storage) setPresenting(c Controller) {
	if sameController(s.presenting, c) {
		return
	}
	s.presenting = c
	s.changed.Emit()
}

func (s *storage) setParent(c Controller) {
	if sameController(s.parent, c) {
		return
	}
	s.parent = c
	s.changed.Emit()
}

func (s *storage) setChildren(list []Controller) {
	if sameControllers(s.children, list) {
		return
	}
	s.children = list
	s.changed.Emit()
}

func sameController(a, b Controller) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.cell() == b.cell()
}

func sameControllers(a, b []Controller) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameController(a[i], b[i]) {
			return false
		}
	}
	return true
}

// sameAny compares represented objects without panicking on uncomparable
// types; uncomparable values always count as changed.
func sameAny(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}
