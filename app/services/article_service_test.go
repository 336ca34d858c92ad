package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/services"
)

func articleInput(title string) models.ArticleInput {
	return models.ArticleInput{
		Title:            title,
		Author:           "Jordan",
		ShortDescription: "A long enough short description for the form.",
		Link:             "https://blog.example.com/post",
		Date:             "2026-08-01",
	}
}

func submitArticles(t *testing.T, svc *services.ArticleService, titles ...string) []models.Article {
	t.Helper()
	out := make([]models.Article, 0, len(titles))
	for _, title := range titles {
		a, err := svc.Submit(context.Background(), articleInput(title))
		require.NoError(t, err)
		out = append(out, a)
	}
	return out
}

func TestSubmitForcesReviewStatus(t *testing.T) {
	svc := services.NewArticleService(&fakeArticleRepo{}, nil)

	a, err := svc.Submit(context.Background(), articleInput("My first post"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusReview, a.Status)
	assert.NotEmpty(t, a.ID)
}

func TestSubmitStoresPublicationDate(t *testing.T) {
	svc := services.NewArticleService(&fakeArticleRepo{}, nil)

	in := articleInput("Dated post")
	in.Date = "2026-08-01T12:30:00Z"
	a, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC), a.Date)

	view := a.View()
	assert.Equal(t, a.Date.Unix(), view.Date.Seconds)
}

func TestSubmitRejectsUnparseableDate(t *testing.T) {
	svc := services.NewArticleService(&fakeArticleRepo{}, nil)

	in := articleInput("Dated post")
	in.Date = "sometime soon"
	_, err := svc.Submit(context.Background(), in)
	assert.Error(t, err)
}

func TestListRequiresAdmin(t *testing.T) {
	svc := services.NewArticleService(&fakeArticleRepo{}, nil)

	_, err := svc.List(context.Background(), userClaims(), "")
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = svc.List(context.Background(), nil, "")
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestListStatusFilter(t *testing.T) {
	svc := services.NewArticleService(&fakeArticleRepo{}, nil)
	submitted := submitArticles(t, svc, "Post one", "Post two", "Post three")

	_, err := svc.SetStatus(context.Background(), adminClaims(), submitted[0].ID, "accepted")
	require.NoError(t, err)

	accepted, err := svc.List(context.Background(), adminClaims(), "accepted")
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, submitted[0].ID, accepted[0].ID)

	review, err := svc.List(context.Background(), adminClaims(), "review")
	require.NoError(t, err)
	assert.Len(t, review, 2)

	all, err := svc.List(context.Background(), adminClaims(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListUnknownFilterMatchesNothing(t *testing.T) {
	svc := services.NewArticleService(&fakeArticleRepo{}, nil)
	submitArticles(t, svc, "Post one")

	got, err := svc.List(context.Background(), adminClaims(), "bogus")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListDegradesToEmptyOnFailure(t *testing.T) {
	svc := services.NewArticleService(&fakeArticleRepo{failList: true}, nil)

	got, err := svc.List(context.Background(), adminClaims(), "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAcceptedShowsOnlyAcceptedArticles(t *testing.T) {
	svc := services.NewArticleService(&fakeArticleRepo{}, nil)
	submitted := submitArticles(t, svc, "Visible post", "Hidden post")

	_, err := svc.SetStatus(context.Background(), adminClaims(), submitted[0].ID, "accepted")
	require.NoError(t, err)

	public := svc.Accepted(context.Background())
	require.Len(t, public, 1)
	assert.Equal(t, "Visible post", public[0].Title)
}

func TestSetStatusTransitions(t *testing.T) {
	svc := services.NewArticleService(&fakeArticleRepo{}, nil)
	submitted := submitArticles(t, svc, "Moderated post")
	id := submitted[0].ID

	// Deleted is not terminal: any known state may follow it.
	for _, status := range []string{"accepted", "archived", "deleted", "review"} {
		a, err := svc.SetStatus(context.Background(), adminClaims(), id, status)
		require.NoError(t, err)
		assert.Equal(t, models.ArticleStatus(status), a.Status)
	}
}

func TestSetStatusRejectsUnknownState(t *testing.T) {
	svc := services.NewArticleService(&fakeArticleRepo{}, nil)
	submitted := submitArticles(t, svc, "Moderated post")

	_, err := svc.SetStatus(context.Background(), adminClaims(), submitted[0].ID, "published")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}

func TestSetStatusRequiresAdmin(t *testing.T) {
	svc := services.NewArticleService(&fakeArticleRepo{}, nil)
	submitted := submitArticles(t, svc, "Moderated post")

	_, err := svc.SetStatus(context.Background(), userClaims(), submitted[0].ID, "accepted")
	assert.ErrorIs(t, err, services.ErrForbidden)
}
