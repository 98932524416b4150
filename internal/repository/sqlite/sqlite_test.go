package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notedeck/internal/domain"
)

// newTestRepo creates an in-memory SQLite repository for testing
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	require.NoError(t, err, "create test repository")

	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

func strPtr(s string) *string {
	return &s
}

func TestMigrateIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	// Running the full migration again must be a no-op, not an error.
	require.NoError(t, repo.migrate())
	require.NoError(t, repo.migrate())

	for _, col := range []string{"priority", "deadline"} {
		exists, err := repo.columnExists("todos", col)
		require.NoError(t, err)
		assert.True(t, exists, "todos.%s", col)
	}
}

func TestMigrateConvergesOldSchema(t *testing.T) {
	// Simulate a deployment created before priority and deadline existed.
	path := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`
		CREATE TABLE todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO todos (title, completed) VALUES ('existing', 1);
	`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	repo, err := New(path)
	require.NoError(t, err)
	defer repo.Close()

	// Existing rows survive with the new columns unset.
	todos, err := repo.ListTodos(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "existing", todos[0].Title)
	assert.True(t, todos[0].Completed)
	assert.Empty(t, todos[0].Priority)
	assert.Nil(t, todos[0].Deadline)
}

func TestCreateNote(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	note, err := repo.CreateNote(ctx, "groceries", "milk, eggs", "errands")
	require.NoError(t, err)

	assert.NotZero(t, note.ID)
	assert.Equal(t, "groceries", note.Title)
	assert.Equal(t, "milk, eggs", note.Content)
	assert.Equal(t, "errands", note.Category)
	assert.Empty(t, note.Summary)
	assert.False(t, note.CreatedAt.IsZero())

	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, *note, notes[0])
}

func TestCreateNoteWithoutCategory(t *testing.T) {
	repo := newTestRepo(t)

	note, err := repo.CreateNote(context.Background(), "plain", "no category", "")
	require.NoError(t, err)
	assert.Empty(t, note.Category)
}

func TestGetNoteNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetNote(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateNotePartialCategory(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	note, err := repo.CreateNote(ctx, "A", "B", "X")
	require.NoError(t, err)

	// Absent category leaves the stored value untouched.
	updated, err := repo.UpdateNote(ctx, note.ID, "A2", "B2", domain.NotePatch{})
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Title)
	assert.Equal(t, "B2", updated.Content)
	assert.Equal(t, "X", updated.Category)

	// Supplied category overwrites.
	updated, err = repo.UpdateNote(ctx, note.ID, "A3", "B3", domain.NotePatch{Category: strPtr("Y")})
	require.NoError(t, err)
	assert.Equal(t, "Y", updated.Category)
}

func TestUpdateNoteDoesNotTouchSummary(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	note, err := repo.CreateNote(ctx, "A", "B", "")
	require.NoError(t, err)
	require.NoError(t, repo.SaveSummary(ctx, note.ID, "short"))

	updated, err := repo.UpdateNote(ctx, note.ID, "A2", "B2", domain.NotePatch{})
	require.NoError(t, err)
	assert.Equal(t, "short", updated.Summary)
}

func TestUpdateNoteNotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.UpdateNote(ctx, 999, "t", "c", domain.NotePatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The failed update left the store unchanged.
	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestDeleteNote(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	note, err := repo.CreateNote(ctx, "A", "B", "")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteNote(ctx, note.ID))

	// Every follow-up operation on the deleted id fails with NotFound.
	_, err = repo.GetNote(ctx, note.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.UpdateNote(ctx, note.ID, "t", "c", domain.NotePatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteNote(ctx, note.ID), domain.ErrNotFound)
	assert.ErrorIs(t, repo.SaveSummary(ctx, note.ID, "s"), domain.ErrNotFound)
}

func TestSaveSummary(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	note, err := repo.CreateNote(ctx, "A", "B", "")
	require.NoError(t, err)

	require.NoError(t, repo.SaveSummary(ctx, note.ID, "first"))
	require.NoError(t, repo.SaveSummary(ctx, note.ID, "second"))

	got, err := repo.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Summary)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, "B", got.Content)
}
