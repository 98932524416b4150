package adapter

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"notedeck/internal/domain"
)

const summaryMaxTokens = 256

// ClaudeSummarizer summarizes note content through the Anthropic Messages API.
type ClaudeSummarizer struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
}

// NewClaudeSummarizer creates a summarizer for the given model.
func NewClaudeSummarizer(apiKey, model string, timeout time.Duration) *ClaudeSummarizer {
	return &ClaudeSummarizer{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		timeout: timeout,
	}
}

// Summarize returns a few-word summary of content. The output is stored
// as-is by the caller; no validation beyond whitespace trimming.
func (c *ClaudeSummarizer) Summarize(ctx context.Context, content string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: summaryMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock("Summarize the following note in a few words: " + content),
			),
		},
	})
	if err != nil {
		return "", &domain.CollaboratorError{Collaborator: "summarizer", Err: err}
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text = block.Text
		}
	}

	return strings.TrimSpace(text), nil
}
