package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terry1921/stickerstore/app/flows"
	"github.com/terry1921/stickerstore/app/services"
)

type fakeSuggester struct {
	topics []string
	err    error
	calls  int
}

func (f *fakeSuggester) SuggestTopics(ctx context.Context, storeFocus string) ([]string, error) {
	f.calls++
	return f.topics, f.err
}

func fiveTopics() []string {
	return []string{
		"Sticker care 101",
		"Designing die-cut art",
		"Laptop sticker layouts",
		"Waterproof vinyl explained",
		"Small-batch sticker runs",
	}
}

func TestSuggestReturnsTopics(t *testing.T) {
	suggester := &fakeSuggester{topics: fiveTopics()}
	svc := services.NewTopicService(suggester)

	topics, err := svc.Suggest(context.Background(), "custom vinyl stickers for laptops")
	require.NoError(t, err)
	assert.Equal(t, fiveTopics(), topics)
	assert.Equal(t, 1, suggester.calls)
}

func TestSuggestRejectsShortFocus(t *testing.T) {
	suggester := &fakeSuggester{topics: fiveTopics()}
	svc := services.NewTopicService(suggester)

	_, err := svc.Suggest(context.Background(), "stickers")
	assert.ErrorIs(t, err, services.ErrFocusTooShort)
	assert.Zero(t, suggester.calls, "model must not be called for invalid input")

	// Padding with whitespace does not help.
	_, err = svc.Suggest(context.Background(), "  sticker   ")
	assert.ErrorIs(t, err, services.ErrFocusTooShort)
}

func TestSuggestWithoutSuggester(t *testing.T) {
	svc := services.NewTopicService(nil)

	_, err := svc.Suggest(context.Background(), "custom vinyl stickers for laptops")
	assert.ErrorIs(t, err, flows.ErrGenerationFailed)
}

func TestSuggestPropagatesGenerationFailure(t *testing.T) {
	suggester := &fakeSuggester{err: flows.ErrGenerationFailed}
	svc := services.NewTopicService(suggester)

	_, err := svc.Suggest(context.Background(), "custom vinyl stickers for laptops")
	assert.ErrorIs(t, err, flows.ErrGenerationFailed)
}
