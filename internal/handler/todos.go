package handler

import (
	"encoding/json"
	"net/http"

	"notedeck/internal/service"
)

// TodoHandler handles todo API requests
type TodoHandler struct {
	svc *service.TodoService
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// CreateTodoRequest is the request body for creating a todo.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline"`
}

// UpdateTodoRequest is the request body for a partial todo update. Every
// field is optional; omitted fields keep their stored value. Completed is
// not settable here, only through toggle.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Deadline    *string `json:"deadline"`
}

// Create creates a new todo
// POST /todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	todo, err := h.svc.Create(r.Context(), req.Title, req.Description, req.Priority, req.Deadline)
	if err != nil {
		writeDomainError(w, "Failed to create todo", err)
		return
	}

	writeJSON(w, todo, http.StatusCreated)
}

// List returns all todos
// GET /todos
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, "Failed to list todos", err)
		return
	}

	writeJSON(w, todos, http.StatusOK)
}

// Get returns a single todo
// GET /todos/{id}
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, "Invalid todo ID", err)
		return
	}

	todo, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get todo", err)
		return
	}

	writeJSON(w, todo, http.StatusOK)
}

// Update applies a partial update to a todo
// PUT /todos/{id}
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, "Invalid todo ID", err)
		return
	}

	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	todo, err := h.svc.Update(r.Context(), id, req.Title, req.Description, req.Priority, req.Deadline)
	if err != nil {
		writeDomainError(w, "Failed to update todo", err)
		return
	}

	writeJSON(w, todo, http.StatusOK)
}

// Delete removes a todo
// DELETE /todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, "Invalid todo ID", err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to delete todo", err)
		return
	}

	writeJSON(w, map[string]string{"message": "Deleted successfully"}, http.StatusOK)
}

// Toggle flips a todo's completed flag
// PATCH /todos/{id}/toggle
func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, "Invalid todo ID", err)
		return
	}

	todo, err := h.svc.Toggle(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to toggle todo", err)
		return
	}

	writeJSON(w, todo, http.StatusOK)
}
