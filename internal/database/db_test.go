package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenCreatesParentDir(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "notes.db")

	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	require.Equal(t, 1, one)
}

func TestMigrateIsIdempotent(t *testing.T) {
	t.Parallel()
	db, err := Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, Migrate(db, migrations))
	require.NoError(t, Migrate(db, migrations), "an already-current database is not an error")

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&count))
	require.Equal(t, 0, count)
}

func TestMigrateLeavesHandleUsable(t *testing.T) {
	t.Parallel()
	db, err := Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, Migrate(db, migrations))

	_, err = db.Exec(`INSERT INTO notes(id, title, body, pinned, created_at, updated_at)
		VALUES ('x', 't', '', 0, ?, ?)`, Now(), Now())
	require.NoError(t, err)
}
