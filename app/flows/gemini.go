package flows

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/terry1921/stickerstore/pkg/logger"
)

// GeminiSuggester implements TopicSuggester on Google's Gemini API.
type GeminiSuggester struct {
	client *genai.Client
	model  string
}

// NewGeminiSuggester creates the suggester. Fails without an API key.
func NewGeminiSuggester(ctx context.Context, apiKey, model string) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("flows: Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("flows: create Gemini client: %w", err)
	}
	return &GeminiSuggester{client: client, model: model}, nil
}

// topicSchema forces the model into a JSON object with a topics array,
// so the response parses without prose stripping.
var topicSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"topics": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"topics"},
}

func (g *GeminiSuggester) SuggestTopics(ctx context.Context, storeFocus string) ([]string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(topicPrompt, storeFocus), genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   topicSchema,
	})
	if err != nil {
		logger.WithCtx(ctx).Error("gemini generation failed", "model", g.model, "error", err)
		return nil, ErrGenerationFailed
	}

	var out struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal([]byte(resp.Text()), &out); err != nil {
		logger.WithCtx(ctx).Error("gemini response not parseable", "model", g.model, "error", err)
		return nil, ErrBadSuggestion
	}
	return validateTopics(out.Topics)
}
