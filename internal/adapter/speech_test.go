package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notedeck/internal/domain"
)

func TestTTSClientSynthesize(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	client := NewTTSClient(srv.URL, "en", 5*time.Second)
	audio, contentType, err := client.Synthesize(context.Background(), "Groceries. milk, eggs")

	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
	assert.Equal(t, "audio/mpeg", contentType)
	assert.Equal(t, "Groceries. milk, eggs", gotQuery)
}

func TestTTSClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewTTSClient(srv.URL, "en", 5*time.Second)
	_, _, err := client.Synthesize(context.Background(), "text")

	var cerr *domain.CollaboratorError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "speech", cerr.Collaborator)
}

func TestTTSClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewTTSClient(srv.URL, "en", 20*time.Millisecond)
	_, _, err := client.Synthesize(context.Background(), "text")

	var cerr *domain.CollaboratorError
	require.True(t, errors.As(err, &cerr))
}

func TestTTSClientUnreachable(t *testing.T) {
	client := NewTTSClient("http://127.0.0.1:1", "en", time.Second)
	_, _, err := client.Synthesize(context.Background(), "text")

	var cerr *domain.CollaboratorError
	require.True(t, errors.As(err, &cerr))
}
