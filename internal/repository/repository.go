package repository

import (
	"context"
	"time"

	"notedeck/internal/domain"
)

// Repository defines the data access interface for notes and todos.
// Operations that reference an id return domain.ErrNotFound when no such
// record exists.
type Repository interface {
	// Note operations
	CreateNote(ctx context.Context, title, content, category string) (*domain.Note, error)
	ListNotes(ctx context.Context) ([]domain.Note, error)
	GetNote(ctx context.Context, id int64) (*domain.Note, error)
	UpdateNote(ctx context.Context, id int64, title, content string, patch domain.NotePatch) (*domain.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	SaveSummary(ctx context.Context, id int64, summary string) error

	// Todo operations
	CreateTodo(ctx context.Context, title, description, priority string, deadline *time.Time) (*domain.Todo, error)
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	GetTodo(ctx context.Context, id int64) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
	ToggleTodo(ctx context.Context, id int64) (*domain.Todo, error)

	// Close releases resources
	Close() error
}
