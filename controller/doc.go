// Package controller provides a view-controller layer for Bubble Tea apps.
//
// Allowed here:
// - controller identity, state storage and change signalling
// - the presentation state machine (present, dismiss, bindings)
// - containment (parent/child) bookkeeping
// - navigation containers and push links over presentation chains
//
// Not allowed here:
// - rendering or key handling (see package host)
// - application wiring (config, storage)
package controller
