package domain

import "time"

// Todo is a single todo item. Completed starts false and only changes
// through the toggle operation. Priority is free-form text; the UI uses
// Urgent/High/Medium/Low but the store does not enforce that.
type Todo struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// TodoPatch carries the optional fields of a todo update. A nil pointer
// means "leave unchanged". Completed is deliberately absent: it is only
// mutated by the toggle operation.
type TodoPatch struct {
	Title       *string
	Description *string
	Priority    *string
	Deadline    *time.Time
}

// deadlineLayouts are tried in order when parsing a deadline string.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDeadline parses an ISO-8601 deadline with an optional trailing "Z"
// UTC marker. Timestamps without an offset are taken as UTC. A string that
// matches none of the accepted layouts yields a ValidationError.
func ParseDeadline(s string) (time.Time, error) {
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ValidationError{Field: "deadline", Reason: "must be an ISO-8601 timestamp"}
}
