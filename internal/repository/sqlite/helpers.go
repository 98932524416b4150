package sqlite

import (
	"database/sql"
	"time"

	"notedeck/internal/domain"
)

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull safely converts string to sql.NullString
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullToTimePtr safely converts sql.NullTime to *time.Time
func nullToTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		return &nt.Time
	}
	return nil
}

// noteRow holds all columns from a note query for scanning
type noteRow struct {
	ID        int64
	Title     string
	Content   string
	Summary   sql.NullString
	Category  sql.NullString
	CreatedAt time.Time
}

// scanArgs returns pointers to all fields for sql.Scan().
// MUST match noteColumns order exactly.
func (r *noteRow) scanArgs() []any {
	return []any{
		&r.ID,
		&r.Title,
		&r.Content,
		&r.Summary,
		&r.Category,
		&r.CreatedAt,
	}
}

// toDomain converts the scanned row to a domain.Note
func (r *noteRow) toDomain() *domain.Note {
	return &domain.Note{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Summary:   nullToString(r.Summary),
		Category:  nullToString(r.Category),
		CreatedAt: r.CreatedAt,
	}
}

// noteColumns is the SELECT column list for note queries
const noteColumns = `id, title, content, summary, category, created_at`

// todoRow holds all columns from a todo query for scanning
type todoRow struct {
	ID          int64
	Title       string
	Description sql.NullString
	Completed   bool
	Priority    sql.NullString
	CreatedAt   time.Time
	Deadline    sql.NullTime
}

// scanArgs returns pointers to all fields for sql.Scan().
// MUST match todoColumns order exactly.
func (r *todoRow) scanArgs() []any {
	return []any{
		&r.ID,
		&r.Title,
		&r.Description,
		&r.Completed,
		&r.Priority,
		&r.CreatedAt,
		&r.Deadline,
	}
}

// toDomain converts the scanned row to a domain.Todo
func (r *todoRow) toDomain() *domain.Todo {
	return &domain.Todo{
		ID:          r.ID,
		Title:       r.Title,
		Description: nullToString(r.Description),
		Completed:   r.Completed,
		Priority:    nullToString(r.Priority),
		CreatedAt:   r.CreatedAt,
		Deadline:    nullToTimePtr(r.Deadline),
	}
}

// todoColumns is the SELECT column list for todo queries
const todoColumns = `id, title, description, completed, priority, created_at, deadline`
