package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/terry1921/stickerstore/app/flows"
	"github.com/terry1921/stickerstore/pkg/cache"
	"github.com/terry1921/stickerstore/pkg/logger"
	"github.com/terry1921/stickerstore/pkg/metrics"
)

// ErrFocusTooShort means the store focus is below the minimum length.
var ErrFocusTooShort = errors.New("store focus must be at least 10 characters")

const topicCacheTTL = time.Hour

// TopicService fronts the suggestion flow with input validation and a
// short-lived cache keyed by the normalised focus text.
type TopicService struct {
	suggester flows.TopicSuggester
}

func NewTopicService(suggester flows.TopicSuggester) *TopicService {
	return &TopicService{suggester: suggester}
}

// Suggest returns 5 to 10 blog topic ideas for the given store focus.
func (s *TopicService) Suggest(ctx context.Context, storeFocus string) ([]string, error) {
	focus := strings.TrimSpace(storeFocus)
	if len(focus) < 10 {
		return nil, ErrFocusTooShort
	}
	if s.suggester == nil {
		return nil, flows.ErrGenerationFailed
	}

	key := topicCacheKey(focus)
	var topics []string
	if cache.Get(ctx, key, &topics) {
		metrics.TopicSuggestions.WithLabelValues("cached").Inc()
		return topics, nil
	}

	topics, err := s.suggester.SuggestTopics(ctx, focus)
	if err != nil {
		metrics.TopicSuggestions.WithLabelValues("error").Inc()
		return nil, err
	}

	if err := cache.Set(ctx, key, topics, topicCacheTTL); err != nil {
		logger.WithCtx(ctx).Warn("topic cache write failed", "error", err)
	}
	metrics.TopicSuggestions.WithLabelValues("ok").Inc()
	return topics, nil
}

func topicCacheKey(focus string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(focus)))
	return "topics:" + hex.EncodeToString(sum[:8])
}
