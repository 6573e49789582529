// Package screens holds the demo app's controllers: a navigation-rooted
// notes list with push-link details and sheet-presented compose and
// settings forms.
package screens

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"greenroom/controller"
	"greenroom/internal/config"
	"greenroom/internal/database/repository"
	"greenroom/internal/service"
)

var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	pinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// ListController is the navigation root: it lists notes, opens details
// through push links, and raises compose/settings sheets.
type ListController struct {
	controller.ViewController

	ctx      context.Context
	repo     *repository.NoteRepo
	search   *service.NoteSearch
	cfg      config.Config
	pageSize int

	notes     []repository.Note
	cursor    int
	searching bool
	query     string
	links     map[string]*controller.PushLink
}

func NewList(ctx context.Context, repo *repository.NoteRepo, search *service.NoteSearch, cfg config.Config) *ListController {
	l := &ListController{
		ctx:      ctx,
		repo:     repo,
		search:   search,
		cfg:      cfg,
		pageSize: cfg.UI.PageSize,
		links:    make(map[string]*controller.PushLink),
	}
	l.Extend(l)
	l.SetTitle("notes")
	l.reload()
	return l
}

// reload re-reads the backing store and re-applies the active query.
func (l *ListController) reload() {
	var notes []repository.Note
	if l.query != "" {
		matches, err := l.search.Search(l.ctx, l.query)
		if err != nil {
			slog.Warn("search failed", "err", err)
		}
		for _, m := range matches {
			notes = append(notes, m.Note)
		}
	} else {
		var err error
		notes, err = l.repo.List(l.ctx)
		if err != nil {
			slog.Warn("list notes failed", "err", err)
		}
	}
	if l.pageSize > 0 && len(notes) > l.pageSize {
		notes = notes[:l.pageSize]
	}
	l.notes = notes
	if l.cursor >= len(l.notes) {
		l.cursor = len(l.notes) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.Changed().Emit()
}

func (l *ListController) selected() *repository.Note {
	if l.cursor < 0 || l.cursor >= len(l.notes) {
		return nil
	}
	return &l.notes[l.cursor]
}

// linkFor returns the push link that opens note's detail, building it on
// first use so detail controllers are created lazily.
func (l *ListController) linkFor(note repository.Note) *controller.PushLink {
	if link, ok := l.links[note.ID]; ok {
		return link
	}
	id := note.ID
	link := controller.NewPushLink(l, func() controller.Controller {
		return NewDetail(l.ctx, l.repo, id, l.reload)
	})
	l.links[id] = link
	return link
}

func (l *ListController) ContentView() controller.Content {
	return controller.ContentFunc(func(ctx controller.RenderContext) string {
		var b strings.Builder
		if l.searching || l.query != "" {
			b.WriteString("search: " + l.query)
			if l.searching {
				b.WriteString("▌")
			}
			b.WriteString("\n\n")
		}
		if len(l.notes) == 0 {
			b.WriteString(dimStyle.Render("no notes"))
		}
		for i, n := range l.notes {
			marker := "  "
			if i == l.cursor {
				marker = cursorStyle.Render("> ")
			}
			pin := "  "
			if n.Pinned {
				pin = pinStyle.Render("★ ")
			}
			title := n.Title
			if title == "" {
				title = "(untitled)"
			}
			line := marker + pin + title
			if i == l.cursor {
				line += dimStyle.Render(fmt.Sprintf("  %s", n.UpdatedAt.Format("02 Jan 15:04")))
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + dimStyle.Render("n new · enter open · p pin · d delete · / search · s settings · q quit"))
		return b.String()
	})
}

func (l *ListController) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if l.searching {
		return l.handleSearchKey(msg)
	}
	switch msg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
			l.Changed().Emit()
		}
		return nil, true
	case "down", "j":
		if l.cursor < len(l.notes)-1 {
			l.cursor++
			l.Changed().Emit()
		}
		return nil, true
	case "enter":
		if n := l.selected(); n != nil {
			l.linkFor(*n).Activate()
		}
		return nil, true
	case "n":
		l.Show(NewCompose(l.ctx, l.repo, l.reload))
		return nil, true
	case "s":
		l.Show(NewSettings(l.cfg, func(cfg config.Config) {
			l.cfg = cfg
			l.pageSize = cfg.UI.PageSize
			l.reload()
		}))
		return nil, true
	case "p":
		if n := l.selected(); n != nil {
			if err := l.repo.SetPinned(l.ctx, n.ID, !n.Pinned); err != nil {
				slog.Warn("pin failed", "id", n.ID, "err", err)
			}
			l.reload()
		}
		return nil, true
	case "d":
		if n := l.selected(); n != nil {
			if err := l.repo.Delete(l.ctx, n.ID); err != nil {
				slog.Warn("delete failed", "id", n.ID, "err", err)
			}
			delete(l.links, n.ID)
			l.reload()
		}
		return nil, true
	case "/":
		l.searching = true
		l.Changed().Emit()
		return nil, true
	}
	return nil, false
}

func (l *ListController) handleSearchKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		l.searching = false
		l.query = ""
		l.reload()
		return nil, true
	case tea.KeyEnter:
		l.searching = false
		l.Changed().Emit()
		return nil, true
	case tea.KeyBackspace:
		if len(l.query) > 0 {
			l.query = l.query[:len(l.query)-1]
			l.reload()
		}
		return nil, true
	case tea.KeyRunes, tea.KeySpace:
		l.query += string(msg.Runes)
		l.reload()
		return nil, true
	}
	return nil, false
}
