package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "UTC marker",
			input:    "2025-01-15T10:00:00Z",
			expected: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "no offset treated as UTC",
			input:    "2025-01-15T10:00:00",
			expected: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "explicit offset",
			input:    "2025-01-15T10:00:00+02:00",
			expected: time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2025-01-15",
			expected: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeadline(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.expected), "got %v, want %v", got, tt.expected)
		})
	}
}

func TestParseDeadlineInvalid(t *testing.T) {
	for _, input := range []string{"not-a-date", "", "15/01/2025", "2025-13-99T00:00:00Z"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDeadline(input)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "deadline", verr.Field)
		})
	}
}

func TestCollaboratorErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &CollaboratorError{Collaborator: "speech", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "speech")
}
