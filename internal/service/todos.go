package service

import (
	"context"
	"strings"
	"time"

	"notedeck/internal/domain"
	"notedeck/internal/repository"
)

// TodoService provides business logic for todo operations.
type TodoService struct {
	repo repository.Repository
}

// NewTodoService creates a new todo service
func NewTodoService(repo repository.Repository) *TodoService {
	return &TodoService{repo: repo}
}

// Create validates and stores a new todo. The deadline string, when
// non-empty, must parse as ISO-8601; completed always starts false.
func (s *TodoService) Create(ctx context.Context, title, description, priority, deadline string) (*domain.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	var due *time.Time
	if deadline != "" {
		t, err := domain.ParseDeadline(deadline)
		if err != nil {
			return nil, err
		}
		due = &t
	}

	return s.repo.CreateTodo(ctx, title, description, priority, due)
}

// List returns all todos.
func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	return s.repo.ListTodos(ctx)
}

// Get retrieves a single todo by id.
func (s *TodoService) Get(ctx context.Context, id int64) (*domain.Todo, error) {
	return s.repo.GetTodo(ctx, id)
}

// Update applies a partial update: only non-nil fields are overwritten.
// Completed cannot be set through this path.
func (s *TodoService) Update(ctx context.Context, id int64, title, description, priority, deadline *string) (*domain.Todo, error) {
	if title != nil && strings.TrimSpace(*title) == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	patch := domain.TodoPatch{
		Title:       title,
		Description: description,
		Priority:    priority,
	}

	if deadline != nil {
		t, err := domain.ParseDeadline(*deadline)
		if err != nil {
			return nil, err
		}
		patch.Deadline = &t
	}

	return s.repo.UpdateTodo(ctx, id, patch)
}

// Delete removes a todo by id.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteTodo(ctx, id)
}

// Toggle flips the todo's completed flag.
func (s *TodoService) Toggle(ctx context.Context, id int64) (*domain.Todo, error) {
	return s.repo.ToggleTodo(ctx, id)
}
