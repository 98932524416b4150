package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"notedeck/internal/domain"
)

// CreateTodo inserts a todo and returns the stored row. Completed always
// starts false; the deadline, when present, has already been parsed.
func (r *Repository) CreateTodo(ctx context.Context, title, description, priority string, deadline *time.Time) (*domain.Todo, error) {
	var dl sql.NullTime
	if deadline != nil {
		dl = sql.NullTime{Time: *deadline, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO todos (title, description, priority, deadline) VALUES (?, ?, ?, ?)
	`, title, stringToNull(description), stringToNull(priority), dl)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("todo insert id: %w", err)
	}

	return r.GetTodo(ctx, id)
}

// ListTodos returns all todos. No ordering is guaranteed.
func (r *Repository) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+todoColumns+` FROM todos`)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	todos := []domain.Todo{}
	for rows.Next() {
		var row todoRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, *row.toDomain())
	}

	return todos, rows.Err()
}

// GetTodo retrieves a single todo by id.
func (r *Repository) GetTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	var row todoRow
	err := r.db.QueryRowContext(ctx, `
		SELECT `+todoColumns+` FROM todos WHERE id = ?
	`, id).Scan(row.scanArgs()...)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query todo: %w", err)
	}

	return row.toDomain(), nil
}

// UpdateTodo overwrites exactly the fields the patch supplies; nil fields
// keep their stored value. Completed is never touched here.
func (r *Repository) UpdateTodo(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	sets := []string{}
	args := []any{}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, stringToNull(*patch.Description))
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, stringToNull(*patch.Priority))
	}
	if patch.Deadline != nil {
		sets = append(sets, "deadline = ?")
		args = append(args, sql.NullTime{Time: *patch.Deadline, Valid: true})
	}

	if len(sets) == 0 {
		return r.GetTodo(ctx, id)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx, `UPDATE todos SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	if err := requireAffected(res); err != nil {
		return nil, err
	}

	return r.GetTodo(ctx, id)
}

// DeleteTodo removes a todo by id.
func (r *Repository) DeleteTodo(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return requireAffected(res)
}

// ToggleTodo flips completed to its logical negation. This is the only
// write path for completed.
func (r *Repository) ToggleTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE todos SET completed = NOT completed WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("toggle todo: %w", err)
	}

	if err := requireAffected(res); err != nil {
		return nil, err
	}

	return r.GetTodo(ctx, id)
}
