package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"greenroom/internal/database/repository"
)

// SeedDefaults ensures a fresh database opens with a welcome note.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	notes := repository.NewNoteRepo(db)
	existing, err := notes.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	welcome := repository.Note{
		ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte("note:welcome")).String(),
		Title: "Welcome",
		Body: "Press n to compose a note, enter to open one,\n" +
			"p to pin, s for settings, / to search, esc to go back.",
		Pinned:    true,
		CreatedAt: Now(),
		UpdatedAt: Now(),
	}
	return notes.Create(ctx, welcome)
}
