package repository

import (
	"context"
	"database/sql"
)

// NoteRepo handles notes.
type NoteRepo struct {
	db *sql.DB
}

func NewNoteRepo(db *sql.DB) *NoteRepo { return &NoteRepo{db: db} }

func (r *NoteRepo) Create(ctx context.Context, n Note) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO notes(id, title, body, pinned, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`, n.ID, n.Title, n.Body, n.Pinned, n.CreatedAt, n.UpdatedAt)
	return err
}

func (r *NoteRepo) Update(ctx context.Context, n Note) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE notes SET title = ?, body = ?, pinned = ?, updated_at = ?
	WHERE id = ?;
	`, n.Title, n.Body, n.Pinned, n.UpdatedAt, n.ID)
	return err
}

func (r *NoteRepo) SetPinned(ctx context.Context, id string, pinned bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notes SET pinned = ? WHERE id = ?`, pinned, id)
	return err
}

func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	return err
}

func (r *NoteRepo) Get(ctx context.Context, id string) (*Note, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, title, body, pinned, created_at, updated_at
	FROM notes WHERE id = ?`, id)
	var n Note
	if err := row.Scan(&n.ID, &n.Title, &n.Body, &n.Pinned, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// List returns all notes, pinned first, most recently updated first within
// each group.
func (r *NoteRepo) List(ctx context.Context) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, body, pinned, created_at, updated_at
	FROM notes ORDER BY pinned DESC, updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.Pinned, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
