package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"notedeck/internal/adapter"
	"notedeck/internal/domain"
	"notedeck/internal/repository"
)

// NoteService provides business logic for note operations, including the
// two enrichment flows.
type NoteService struct {
	repo       repository.Repository
	summarizer adapter.Summarizer
	speech     adapter.SpeechSynthesizer
}

// NewNoteService creates a new note service
func NewNoteService(repo repository.Repository, summarizer adapter.Summarizer, speech adapter.SpeechSynthesizer) *NoteService {
	return &NoteService{
		repo:       repo,
		summarizer: summarizer,
		speech:     speech,
	}
}

// Create validates and stores a new note.
func (s *NoteService) Create(ctx context.Context, title, content, category string) (*domain.Note, error) {
	if err := validateNoteFields(title, content); err != nil {
		return nil, err
	}
	return s.repo.CreateNote(ctx, title, content, category)
}

// List returns all notes.
func (s *NoteService) List(ctx context.Context) ([]domain.Note, error) {
	return s.repo.ListNotes(ctx)
}

// Get retrieves a single note by id.
func (s *NoteService) Get(ctx context.Context, id int64) (*domain.Note, error) {
	return s.repo.GetNote(ctx, id)
}

// Update overwrites title and content, and category only when supplied.
func (s *NoteService) Update(ctx context.Context, id int64, title, content string, category *string) (*domain.Note, error) {
	if err := validateNoteFields(title, content); err != nil {
		return nil, err
	}
	return s.repo.UpdateNote(ctx, id, title, content, domain.NotePatch{Category: category})
}

// Delete removes a note by id.
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteNote(ctx, id)
}

// Summarize asks the summarization collaborator for a summary of the
// note's content, persists it, and returns it. The collaborator is called
// exactly once; its output is stored as-is.
func (s *NoteService) Summarize(ctx context.Context, id int64) (string, error) {
	note, err := s.repo.GetNote(ctx, id)
	if err != nil {
		return "", err
	}

	summary, err := s.summarizer.Summarize(ctx, note.Content)
	if err != nil {
		return "", err
	}

	if err := s.repo.SaveSummary(ctx, id, summary); err != nil {
		return "", err
	}

	log.Debug().Int64("note_id", id).Msg("summary stored")
	return summary, nil
}

// Speak synthesizes "{title}. {content}" as audio and returns the payload
// with its content type. Nothing is persisted.
func (s *NoteService) Speak(ctx context.Context, id int64) ([]byte, string, error) {
	note, err := s.repo.GetNote(ctx, id)
	if err != nil {
		return nil, "", err
	}

	return s.speech.Synthesize(ctx, note.Title+". "+note.Content)
}

func validateNoteFields(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(content) == "" {
		return &domain.ValidationError{Field: "content", Reason: "must not be empty"}
	}
	return nil
}
