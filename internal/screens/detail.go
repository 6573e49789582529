package screens

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"greenroom/controller"
	"greenroom/internal/database/repository"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// DetailController shows a single note. It re-reads the row on every
// appearance so edits made elsewhere are picked up.
type DetailController struct {
	controller.ViewController

	ctx      context.Context
	repo     *repository.NoteRepo
	noteID   string
	onChange func()

	note *repository.Note
}

func NewDetail(ctx context.Context, repo *repository.NoteRepo, noteID string, onChange func()) *DetailController {
	d := &DetailController{ctx: ctx, repo: repo, noteID: noteID, onChange: onChange}
	d.Extend(d)
	d.refresh()
	return d
}

func (d *DetailController) refresh() {
	note, err := d.repo.Get(d.ctx, d.noteID)
	if err != nil {
		slog.Warn("load note failed", "id", d.noteID, "err", err)
	}
	d.note = note
	if note != nil {
		d.SetTitle(note.Title)
		d.SetRepresentedObject(*note)
	}
	d.Changed().Emit()
}

func (d *DetailController) WillAppear() { d.refresh() }

func (d *DetailController) ContentView() controller.Content {
	return controller.ContentFunc(func(ctx controller.RenderContext) string {
		if d.note == nil {
			return dimStyle.Render("note no longer exists")
		}
		var b strings.Builder
		b.WriteString(titleStyle.Render(d.note.Title) + "\n")
		if d.note.Pinned {
			b.WriteString(pinStyle.Render("★ pinned") + "\n")
		}
		b.WriteString(dimStyle.Render("updated "+d.note.UpdatedAt.Format("02 Jan 2006 15:04")) + "\n\n")
		b.WriteString(d.note.Body)
		b.WriteString("\n\n" + dimStyle.Render("p pin · d delete · esc back"))
		return b.String()
	})
}

func (d *DetailController) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "p":
		if d.note != nil {
			if err := d.repo.SetPinned(d.ctx, d.note.ID, !d.note.Pinned); err != nil {
				slog.Warn("pin failed", "id", d.note.ID, "err", err)
			}
			d.refresh()
			d.onChange()
		}
		return nil, true
	case "d":
		if d.note != nil {
			if err := d.repo.Delete(d.ctx, d.note.ID); err != nil {
				slog.Warn("delete failed", "id", d.note.ID, "err", err)
			}
			d.onChange()
			d.Dismiss()
		}
		return nil, true
	}
	return nil, false
}
