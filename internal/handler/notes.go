package handler

import (
	"encoding/json"
	"net/http"

	"notedeck/internal/service"
)

// NoteHandler handles note API requests
type NoteHandler struct {
	svc *service.NoteService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// NoteRequest is the request body for creating or updating a note.
// Category distinguishes "absent" from "set to empty".
type NoteRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category *string `json:"category"`
}

// Create creates a new note
// POST /notes
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	category := ""
	if req.Category != nil {
		category = *req.Category
	}

	note, err := h.svc.Create(r.Context(), req.Title, req.Content, category)
	if err != nil {
		writeDomainError(w, "Failed to create note", err)
		return
	}

	writeJSON(w, note, http.StatusCreated)
}

// List returns all notes
// GET /notes
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, "Failed to list notes", err)
		return
	}

	writeJSON(w, notes, http.StatusOK)
}

// Update overwrites a note's title and content, and its category when supplied
// PUT /notes/{id}
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, "Invalid note ID", err)
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.svc.Update(r.Context(), id, req.Title, req.Content, req.Category)
	if err != nil {
		writeDomainError(w, "Failed to update note", err)
		return
	}

	writeJSON(w, note, http.StatusOK)
}

// Delete removes a note
// DELETE /notes/{id}
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, "Invalid note ID", err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to delete note", err)
		return
	}

	writeJSON(w, map[string]string{"message": "Deleted successfully"}, http.StatusOK)
}

// Summarize generates and stores a summary for a note
// POST /notes/{id}/summarize
func (h *NoteHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, "Invalid note ID", err)
		return
	}

	summary, err := h.svc.Summarize(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to summarize note", err)
		return
	}

	writeJSON(w, map[string]string{"summary": summary}, http.StatusOK)
}

// Speak synthesizes a note as audio and streams it back
// POST /notes/{id}/speak
func (h *NoteHandler) Speak(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, "Invalid note ID", err)
		return
	}

	audio, contentType, err := h.svc.Speak(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to synthesize note", err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "inline; filename=note_audio.mp3")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(audio)
}
