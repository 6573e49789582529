package host

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"greenroom/controller"
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.ThickBorder()).
	BorderForeground(lipgloss.Color("#f38ba8")).
	Padding(0, 1)

// MismatchPanel renders a diagnostic card for a presentation whose content
// cannot be resolved. This is a debug aid, not a runtime fallback: it shows
// up only when a record was committed without a content view (or a typed
// lookup raced a dismissal) so the state can be read off the screen.
func MismatchPanel(presenter controller.Controller) string {
	var b strings.Builder
	b.WriteString("presentation content unavailable\n")
	b.WriteString("presenter: " + presenter.Description())
	for _, rec := range presenter.Presentations() {
		b.WriteString(fmt.Sprintf("\n  %s → %s", rec.Mode(), rec.Controller().Description()))
	}
	return panelStyle.Render(b.String())
}
