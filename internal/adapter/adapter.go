// Package adapter holds clients for the external enrichment services.
// Both are treated as black boxes: text in, text or audio out. The only
// local policy is a request timeout so a dead collaborator cannot hang a
// request forever.
package adapter

import "context"

// Summarizer produces a short summary of note content.
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

// SpeechSynthesizer renders text as audio and reports its content type.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) (audio []byte, contentType string, err error)
}
