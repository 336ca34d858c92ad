// Package flows holds the AI-assisted content flows. Each flow hides its
// model behind a small interface so the rest of the app never touches
// the SDK directly.
package flows

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// TopicSuggester produces blog topic ideas for a store focus.
type TopicSuggester interface {
	SuggestTopics(ctx context.Context, storeFocus string) ([]string, error)
}

const topicPrompt = `You are an expert content strategist for e-commerce stores.
Generate a list of 5 to 10 engaging blog topic ideas for a store that focuses on: %s.
The topics should be creative, relevant to the store's focus, and appealing to potential customers.
`

// Model error strings stay generic: the upstream failure detail goes to
// the log, never to the client.
var (
	ErrGenerationFailed = errors.New("topic generation failed")
	ErrBadSuggestion    = errors.New("model returned an unusable suggestion list")
)

// validateTopics checks the model honoured the contract: 5 to 10
// non-empty topics.
func validateTopics(topics []string) ([]string, error) {
	cleaned := make([]string, 0, len(topics))
	for _, t := range topics {
		if s := strings.TrimSpace(t); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) < 5 || len(cleaned) > 10 {
		return nil, fmt.Errorf("%w: got %d topics", ErrBadSuggestion, len(cleaned))
	}
	return cleaned, nil
}
