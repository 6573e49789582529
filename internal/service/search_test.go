package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"greenroom/internal/database"
	"greenroom/internal/database/repository"
)

func seedNotes(t *testing.T, titles ...string) *repository.NoteRepo {
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
			ID:        uuid.NewString(),
			Title:     title,
			CreatedAt: now,
			UpdatedAt: now,
		}))
	}
	return repo
}

func TestSearchSubstringBeatsFuzzy(t *testing.T) {
	t.Parallel()
	repo := seedNotes(t, "groceries", "grocery run", "garden")
	svc := &NoteSearch{Notes: repo}

	matches, err := svc.Search(context.Background(), "grocer")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.Equal(t, float64(1), matches[0].Score)
	require.Equal(t, float64(1), matches[1].Score)
}

func TestSearchFuzzyTitle(t *testing.T) {
	t.Parallel()
	repo := seedNotes(t, "meeting notes", "shopping")
	svc := &NoteSearch{Notes: repo}

	matches, err := svc.Search(context.Background(), "meating notes")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "meeting notes", matches[0].Note.Title)
	require.Less(t, matches[0].Score, float64(1))
}

func TestSearchEmptyQuery(t *testing.T) {
	t.Parallel()
	repo := seedNotes(t, "anything")
	svc := &NoteSearch{Notes: repo}

	matches, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestSearchBodyMatch(t *testing.T) {
	t.Parallel()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, migrations))

	repo := repository.NewNoteRepo(db)
	now := database.Now()
	require.NoError(t, repo.Create(context.Background(), repository.Note{
		ID: uuid.NewString(), Title: "list", Body: "remember the milk",
		CreatedAt: now, UpdatedAt: now,
	}))

	svc := &NoteSearch{Notes: repo}
	matches, err := svc.Search(context.Background(), "milk")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, 0.8, matches[0].Score)
}
