package screens

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"greenroom/controller"
	"greenroom/internal/database"
	"greenroom/internal/database/repository"
)

// ComposeController is a sheet form that creates a note. Enter saves and
// dismisses; esc falls through to the host binding, which dismisses without
// saving.
type ComposeController struct {
	controller.ViewController

	ctx     context.Context
	repo    *repository.NoteRepo
	onSaved func()

	title textinput.Model
	body  textinput.Model
	focus int
}

func NewCompose(ctx context.Context, repo *repository.NoteRepo, onSaved func()) *ComposeController {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 120
	title.Focus()

	body := textinput.New()
	body.Placeholder = "body"
	body.CharLimit = 500

	c := &ComposeController{ctx: ctx, repo: repo, onSaved: onSaved, title: title, body: body}
	c.Extend(c)
	c.SetTitle("new note")
	return c
}

func (c *ComposeController) ContentView() controller.Content {
	return controller.ContentFunc(func(ctx controller.RenderContext) string {
		var b strings.Builder
		b.WriteString(titleStyle.Render("New note") + "\n\n")
		b.WriteString(c.title.View() + "\n")
		b.WriteString(c.body.View() + "\n\n")
		b.WriteString(dimStyle.Render("tab switch · enter save · esc cancel"))
		return b.String()
	})
}

func (c *ComposeController) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		return nil, false // host dismisses the sheet
	case tea.KeyTab, tea.KeyShiftTab:
		c.focus = (c.focus + 1) % 2
		if c.focus == 0 {
			c.title.Focus()
			c.body.Blur()
		} else {
			c.title.Blur()
			c.body.Focus()
		}
		c.Changed().Emit()
		return nil, true
	case tea.KeyEnter:
		c.save()
		return nil, true
	}
	var cmd tea.Cmd
	if c.focus == 0 {
		c.title, cmd = c.title.Update(msg)
	} else {
		c.body, cmd = c.body.Update(msg)
	}
	c.Changed().Emit()
	return cmd, true
}

func (c *ComposeController) save() {
	title := strings.TrimSpace(c.title.Value())
	if title == "" {
		return
	}
	now := database.Now()
	err := c.repo.Create(c.ctx, repository.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      strings.TrimSpace(c.body.Value()),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.Warn("save note failed", "err", err)
		return
	}
	c.onSaved()
	c.Dismiss()
}
