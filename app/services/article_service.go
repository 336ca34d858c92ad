package services

import (
	"context"
	"strings"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/repositories"
	"github.com/terry1921/stickerstore/pkg/auth"
	"github.com/terry1921/stickerstore/pkg/logger"
	"github.com/terry1921/stickerstore/pkg/validate"
	"github.com/terry1921/stickerstore/pkg/ws"
)

// ArticleService owns blog submissions and their moderation lifecycle.
type ArticleService struct {
	repo repositories.ArticleRepository
	feed *ws.Hub
}

// NewArticleService wires the service. feed may be nil; events are then
// dropped.
func NewArticleService(repo repositories.ArticleRepository, feed *ws.Hub) *ArticleService {
	return &ArticleService{repo: repo, feed: feed}
}

// Submit accepts a public blog submission. The stored article always
// enters the review state: submitters cannot influence moderation.
func (s *ArticleService) Submit(ctx context.Context, in models.ArticleInput) (models.Article, error) {
	date, err := validate.ParseDate(in.Date)
	if err != nil {
		return models.Article{}, err
	}

	a := models.Article{
		Title:            strings.TrimSpace(in.Title),
		Author:           strings.TrimSpace(in.Author),
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		Link:             in.Link,
		Date:             date.UTC(),
		Status:           models.StatusReview,
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return models.Article{}, err
	}

	logger.WithCtx(ctx).Info("article submitted", "id", a.ID, "author", a.Author)
	if s.feed != nil {
		s.feed.Publish("article.submitted", a.View())
	}
	return a, nil
}

// List returns articles newest first, optionally narrowed to one status.
// The filter is applied after the fetch; a value that names no known
// status simply matches nothing. Only admins see the moderation list.
func (s *ArticleService) List(ctx context.Context, principal *auth.Claims, status string) ([]models.Article, error) {
	if principal == nil || principal.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	articles, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("article listing failed", "error", err)
		return []models.Article{}, nil
	}
	if status == "" {
		return articles, nil
	}

	filtered := []models.Article{}
	for _, a := range articles {
		if string(a.Status) == status {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// Accepted returns the publicly visible articles, newest first. Failures
// degrade to an empty listing.
func (s *ArticleService) Accepted(ctx context.Context) []models.Article {
	articles, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("article listing failed", "error", err)
		return []models.Article{}
	}
	visible := []models.Article{}
	for _, a := range articles {
		if a.Status == models.StatusAccepted {
			visible = append(visible, a)
		}
	}
	return visible
}

// SetStatus moves an article to a new moderation state. Any known state
// may follow any other, deleted included. Admin only.
func (s *ArticleService) SetStatus(ctx context.Context, principal *auth.Claims, id, status string) (models.Article, error) {
	if principal == nil || principal.Role != models.RoleAdmin {
		return models.Article{}, ErrForbidden
	}
	if !models.ValidStatus(status) {
		return models.Article{}, ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, models.ArticleStatus(status)); err != nil {
		return models.Article{}, err
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Article{}, err
	}

	logger.WithCtx(ctx).Info("article status changed", "id", id, "status", status, "by", principal.UID)
	if s.feed != nil {
		s.feed.Publish("article.status", a.View())
	}
	return a, nil
}
