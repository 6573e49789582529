// Package host runs a controller tree inside a Bubble Tea program. It is
// the rendering layer the controller package stays agnostic of: it observes
// change signals, queries active presentations to decide what to mount, and
// reports user-driven dismissal back through the two-way bindings.
package host

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"greenroom/controller"
)

// ChangedMsg reports that some observed controller mutated its state. The
// next View pass re-reads everything from the controllers.
type ChangedMsg struct{}

// KeyHandler lets a controller consume key input before the host's own
// bindings run. The frontmost controller (sheet content, else the visible
// navigation entry, else the root) is asked first.
type KeyHandler interface {
	HandleKey(msg tea.KeyMsg) (tea.Cmd, bool)
}

var crumbStyle = lipgloss.NewStyle().Bold(true)

// Host is a tea.Model around a root controller.
type Host struct {
	root    controller.Controller
	keys    KeyMap
	width   int
	height  int
	changes chan struct{}
	watched map[uuid.UUID]func()
}

func New(root controller.Controller) *Host {
	h := &Host{
		root:    root,
		keys:    DefaultKeyMap(),
		width:   80,
		height:  24,
		changes: make(chan struct{}, 1),
		watched: make(map[uuid.UUID]func()),
	}
	h.rescan()
	return h
}

// Root returns the hosted controller.
func (h *Host) Root() controller.Controller { return h.root }

func (h *Host) Init() tea.Cmd {
	return h.waitForChange()
}

func (h *Host) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-h.changes
		return ChangedMsg{}
	}
}

// notify coalesces bursts of signals into one pending change.
func (h *Host) notify() {
	select {
	case h.changes <- struct{}{}:
	default:
	}
}

// rescan subscribes to every controller reachable from the root through
// active presentations and children, and drops subscriptions to controllers
// that are no longer reachable. Controllers presented after the last scan
// are picked up on the next ChangedMsg.
func (h *Host) rescan() {
	seen := make(map[uuid.UUID]bool)
	h.observe(h.root, seen)
	for id, cancel := range h.watched {
		if !seen[id] {
			cancel()
			delete(h.watched, id)
		}
	}
}

func (h *Host) observe(c controller.Controller, seen map[uuid.UUID]bool) {
	if c == nil || seen[c.ID()] {
		return
	}
	seen[c.ID()] = true
	if _, ok := h.watched[c.ID()]; !ok {
		h.watched[c.ID()] = c.Changed().Subscribe(h.notify)
	}
	for _, rec := range c.Presentations() {
		h.observe(rec.Controller(), seen)
	}
	for _, child := range c.Children() {
		h.observe(child, seen)
	}
}

func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ChangedMsg:
		h.rescan()
		return h, h.waitForChange()
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height
		return h, nil
	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Quit) {
			return h, tea.Quit
		}
		if handler, ok := controller.Unwrap(h.front()).(KeyHandler); ok {
			if cmd, handled := handler.HandleKey(msg); handled {
				return h, cmd
			}
		}
		if key.Matches(msg, h.keys.Dismiss) {
			h.dismissFront()
			return h, nil
		}
	}
	return h, nil
}

// front returns the controller the user is interacting with: the sheet
// occupant when one is mounted, else the visible navigation entry, else the
// root itself.
func (h *Host) front() controller.Controller {
	if rec := h.root.ActivePresentation(controller.ModeSheet); rec != nil {
		return rec.Controller()
	}
	if nav, ok := controller.Unwrap(h.root).(*controller.NavigationController); ok {
		if vis := nav.VisibleViewController(); vis != nil {
			return vis
		}
	}
	return h.root
}

// dismissFront reports user-driven dismissal through the binding contract:
// an active sheet is unmounted via its binding, otherwise the visible
// navigation entry is popped.
func (h *Host) dismissFront() {
	if b := h.root.IsPresentingMode(controller.ModeSheet); b.Get() {
		b.Set(false)
		return
	}
	if nav, ok := controller.Unwrap(h.root).(*controller.NavigationController); ok {
		nav.Pop()
	}
}

func (h *Host) View() string {
	ctx := controller.RenderContext{
		Width:  h.width,
		Height: h.height,
		// The root is not presented by anyone; content sees ModeAutomatic.
		Mode: controller.ModeAutomatic,
	}

	base := ""
	if crumb := h.breadcrumb(); crumb != "" {
		base = crumbStyle.Render(crumb) + "\n\n"
		ctx.Height -= 2
	}
	if cv := h.root.ContentView(); cv != nil {
		base += cv.Render(ctx)
	}

	rec := h.root.ActivePresentation(controller.ModeSheet)
	if rec == nil {
		return base
	}
	card := ""
	if content := rec.Content(); content != nil {
		card = content.Render(controller.RenderContext{
			Width:  maxSheetWidth(h.width),
			Height: h.height - 6,
			Mode:   rec.Mode(),
		})
	} else {
		return RenderSheet(base, MismatchPanel(h.root), h.width, h.height)
	}
	return RenderSheet(base, card, h.width, h.height)
}

// breadcrumb joins the navigation chain's titles when the root is a
// navigation container.
func (h *Host) breadcrumb() string {
	nav, ok := controller.Unwrap(h.root).(*controller.NavigationController)
	if !ok {
		return ""
	}
	out := ""
	for i, c := range nav.ViewControllers() {
		title := c.Title()
		if title == "" {
			title = "…"
		}
		if i > 0 {
			out += " › "
		}
		out += title
	}
	return out
}

func maxSheetWidth(width int) int {
	w := width - 8
	if w > 70 {
		w = 70
	}
	if w < 20 {
		w = 20
	}
	return w
}
