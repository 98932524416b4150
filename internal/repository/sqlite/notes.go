package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"notedeck/internal/domain"
)

// CreateNote inserts a note and returns the stored row, including the
// assigned id and creation timestamp.
func (r *Repository) CreateNote(ctx context.Context, title, content, category string) (*domain.Note, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO notes (title, content, category) VALUES (?, ?, ?)
	`, title, content, stringToNull(category))
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("note insert id: %w", err)
	}

	return r.GetNote(ctx, id)
}

// ListNotes returns all notes. No ordering is guaranteed.
func (r *Repository) ListNotes(ctx context.Context) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+noteColumns+` FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var row noteRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, *row.toDomain())
	}

	return notes, rows.Err()
}

// GetNote retrieves a single note by id.
func (r *Repository) GetNote(ctx context.Context, id int64) (*domain.Note, error) {
	var row noteRow
	err := r.db.QueryRowContext(ctx, `
		SELECT `+noteColumns+` FROM notes WHERE id = ?
	`, id).Scan(row.scanArgs()...)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query note: %w", err)
	}

	return row.toDomain(), nil
}

// UpdateNote overwrites title and content, and category only when the patch
// supplies it. Summary is never touched here.
func (r *Repository) UpdateNote(ctx context.Context, id int64, title, content string, patch domain.NotePatch) (*domain.Note, error) {
	var (
		res sql.Result
		err error
	)
	if patch.Category != nil {
		res, err = r.db.ExecContext(ctx, `
			UPDATE notes SET title = ?, content = ?, category = ? WHERE id = ?
		`, title, content, stringToNull(*patch.Category), id)
	} else {
		res, err = r.db.ExecContext(ctx, `
			UPDATE notes SET title = ?, content = ? WHERE id = ?
		`, title, content, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	if err := requireAffected(res); err != nil {
		return nil, err
	}

	return r.GetNote(ctx, id)
}

// DeleteNote removes a note by id.
func (r *Repository) DeleteNote(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return requireAffected(res)
}

// SaveSummary persists the summarization result for a note.
func (r *Repository) SaveSummary(ctx context.Context, id int64, summary string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notes SET summary = ? WHERE id = ?`, summary, id)
	if err != nil {
		return fmt.Errorf("save summary: %w", err)
	}
	return requireAffected(res)
}

// requireAffected maps a zero-row write to ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
