package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"notedeck/internal/domain"
)

// audioMimeType is what the synthesis endpoint returns for every voice.
const audioMimeType = "audio/mpeg"

// TTSClient synthesizes speech through a translate-style TTS endpoint.
// The audio bytes are returned to the caller and never written to disk,
// so concurrent requests for the same note cannot collide on a filename.
type TTSClient struct {
	endpoint string
	lang     string
	client   *http.Client
}

// NewTTSClient creates a speech client for the given endpoint and language.
func NewTTSClient(endpoint, lang string, timeout time.Duration) *TTSClient {
	return &TTSClient{
		endpoint: endpoint,
		lang:     lang,
		client:   &http.Client{Timeout: timeout},
	}
}

// Synthesize renders text as MP3 audio.
func (c *TTSClient) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", c.lang)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("build tts request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", &domain.CollaboratorError{Collaborator: "speech", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &domain.CollaboratorError{
			Collaborator: "speech",
			Err:          fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &domain.CollaboratorError{Collaborator: "speech", Err: err}
	}

	return audio, audioMimeType, nil
}
