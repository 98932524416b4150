package domain

import "time"

// Note is a free-form note. Title and content are required and never null
// once the note exists. Summary is only written by the summarization flow,
// never through the update path.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary,omitempty"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NotePatch carries the optional fields of a note update. A nil pointer
// means "leave unchanged"; title and content are always supplied and are
// not part of the patch.
type NotePatch struct {
	Category *string
}
