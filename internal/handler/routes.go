package handler

import "net/http"

// Routes builds the API route table.
func Routes(notes *NoteHandler, todos *TodoHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Note endpoints
	mux.HandleFunc("POST /notes", notes.Create)
	mux.HandleFunc("GET /notes", notes.List)
	mux.HandleFunc("PUT /notes/{id}", notes.Update)
	mux.HandleFunc("DELETE /notes/{id}", notes.Delete)
	mux.HandleFunc("POST /notes/{id}/summarize", notes.Summarize)
	mux.HandleFunc("POST /notes/{id}/speak", notes.Speak)

	// Todo endpoints
	mux.HandleFunc("POST /todos", todos.Create)
	mux.HandleFunc("GET /todos", todos.List)
	mux.HandleFunc("GET /todos/{id}", todos.Get)
	mux.HandleFunc("PUT /todos/{id}", todos.Update)
	mux.HandleFunc("DELETE /todos/{id}", todos.Delete)
	mux.HandleFunc("PATCH /todos/{id}/toggle", todos.Toggle)

	return mux
}
