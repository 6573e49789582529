package screens

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"greenroom/controller"
	"greenroom/internal/config"
	"greenroom/internal/database"
	"greenroom/internal/database/repository"
	"greenroom/internal/service"
)

func testList(t *testing.T, titles ...string) (*ListController, *repository.NoteRepo) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, migrations))

	repo := repository.NewNoteRepo(db)
	now := database.Now()
	for _, title := range titles {
		require.NoError(t, repo.Create(context.Background(), repository.Note{
			ID: uuid.NewString(), Title: title, CreatedAt: now, UpdatedAt: now,
		}))
	}

	cfg := config.Config{UI: config.UIConfig{Theme: "dark", PageSize: 20}}
	list := NewList(context.Background(), repo, &service.NoteSearch{Notes: repo}, cfg)
	return list, repo
}

func press(t *testing.T, h interface {
	HandleKey(tea.KeyMsg) (tea.Cmd, bool)
}, keys string) {
	t.Helper()
	for _, r := range keys {
		h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func pressType(h interface {
	HandleKey(tea.KeyMsg) (tea.Cmd, bool)
}, kt tea.KeyType) {
	h.HandleKey(tea.KeyMsg{Type: kt})
}

func TestEnterOpensDetailThroughPushLink(t *testing.T) {
	list, _ := testList(t, "alpha")
	nav := controller.NewNavigationController(list)

	pressType(list, tea.KeyEnter)

	vis := nav.VisibleViewController()
	detail, ok := controller.Unwrap(vis).(*DetailController)
	require.True(t, ok, "visible controller should be the detail")
	require.Equal(t, "alpha", detail.Title())
}

func TestDetailInstanceReusedAcrossOpens(t *testing.T) {
	list, _ := testList(t, "alpha")
	nav := controller.NewNavigationController(list)

	pressType(list, tea.KeyEnter)
	first := nav.VisibleViewController()
	nav.Pop()
	pressType(list, tea.KeyEnter)
	second := nav.VisibleViewController()

	require.Equal(t, first.ID(), second.ID(), "push link should cache the detail")
}

func TestComposeSavesAndDismisses(t *testing.T) {
	list, repo := testList(t)
	nav := controller.NewNavigationController(list)

	press(t, list, "n")
	rec := nav.ActivePresentation(controller.ModeSheet)
	require.NotNil(t, rec, "compose should mount as a sheet on the chain top")
	compose := controller.Unwrap(rec.Controller()).(*ComposeController)

	press(t, compose, "standup")
	pressType(compose, tea.KeyEnter)

	require.Nil(t, nav.ActivePresentation(controller.ModeSheet), "save should dismiss the sheet")
	notes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "standup", notes[0].Title)
}

func TestComposeRequiresTitle(t *testing.T) {
	list, repo := testList(t)
	controller.NewNavigationController(list)

	press(t, list, "n")
	compose := listSheet(t, list).(*ComposeController)
	pressType(compose, tea.KeyEnter)

	require.NotNil(t, compose.PresentingViewController(), "empty title should keep the sheet up")
	notes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestDeleteFromDetailDismissesAndRefreshes(t *testing.T) {
	list, repo := testList(t, "alpha")
	nav := controller.NewNavigationController(list)

	pressType(list, tea.KeyEnter)
	detail := controller.Unwrap(nav.VisibleViewController()).(*DetailController)
	press(t, detail, "d")

	require.Equal(t, list.ID(), nav.VisibleViewController().ID(), "delete should fall back to the list")
	notes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestSearchFiltersList(t *testing.T) {
	list, _ := testList(t, "groceries", "meeting")
	controller.NewNavigationController(list)

	press(t, list, "/")
	press(t, list, "meet")
	pressType(list, tea.KeyEnter)

	require.Len(t, list.notes, 1)
	require.Equal(t, "meeting", list.notes[0].Title)

	press(t, list, "/")
	pressType(list, tea.KeyEsc)
	require.Len(t, list.notes, 2, "esc should clear the filter")
}

func TestSettingsApplyPageSize(t *testing.T) {
	t.Setenv("GREENROOM_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	list, _ := testList(t, "a", "b", "c")
	nav := controller.NewNavigationController(list)

	press(t, list, "s")
	rec := nav.ActivePresentation(controller.ModeSheet)
	require.NotNil(t, rec)
	settings := controller.Unwrap(rec.Controller()).(*SettingsController)

	press(t, settings, "--------------------") // clamp well below 3
	pressType(settings, tea.KeyEnter)

	require.Nil(t, nav.ActivePresentation(controller.ModeSheet))
	require.Len(t, list.notes, 1, "new page size should apply to the list")
}

func listSheet(t *testing.T, list *ListController) controller.Controller {
	t.Helper()
	top := list.Parent()
	require.NotNil(t, top)
	rec := top.ActivePresentation(controller.ModeSheet)
	require.NotNil(t, rec)
	return controller.Unwrap(rec.Controller())
}
