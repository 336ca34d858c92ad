package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terry1921/stickerstore/app/controllers"
	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/repositories"
	"github.com/terry1921/stickerstore/app/services"
)

type memArticleRepo struct {
	articles []models.Article
}

func (m *memArticleRepo) Create(ctx context.Context, a *models.Article) error {
	a.ID = "art-1"
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	m.articles = append(m.articles, *a)
	return nil
}

func (m *memArticleRepo) List(ctx context.Context) ([]models.Article, error) {
	return m.articles, nil
}

func (m *memArticleRepo) FindByID(ctx context.Context, id string) (models.Article, error) {
	for _, a := range m.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Article{}, repositories.ErrNotFound
}

func (m *memArticleRepo) UpdateStatus(ctx context.Context, id string, status models.ArticleStatus) error {
	for i := range m.articles {
		if m.articles[i].ID == id {
			m.articles[i].Status = status
			return nil
		}
	}
	return repositories.ErrNotFound
}

func newArticleController() (*controllers.ArticleController, *memArticleRepo) {
	repo := &memArticleRepo{}
	return controllers.NewArticleController(services.NewArticleService(repo, nil)), repo
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSubmitStoresArticleInReview(t *testing.T) {
	controller, repo := newArticleController()

	rec := postJSON(t, controller.Submit, "/submit-blog", `{
		"title": "Sticker stories",
		"author": "Jordan",
		"shortDescription": "How we turned doodles into a sticker line.",
		"link": "https://blog.example.com/sticker-stories",
		"date": "2026-08-01T00:00:00Z",
		"status": "accepted"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, repo.articles, 1)
	// The submitted status field is ignored.
	assert.Equal(t, models.StatusReview, repo.articles[0].Status)

	// The publication date is kept and returned in wire form.
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, repo.articles[0].Date)

	var body struct {
		Data models.ArticleView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, want.Unix(), body.Data.Date.Seconds)
}

func TestSubmitValidatesInput(t *testing.T) {
	controller, repo := newArticleController()

	rec := postJSON(t, controller.Submit, "/submit-blog", `{
		"title": "Hey",
		"author": "J",
		"shortDescription": "too short",
		"link": "not-a-url",
		"date": "whenever"
	}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, repo.articles)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, field := range []string{"title", "author", "shortDescription", "link", "date"} {
		assert.Contains(t, body.Errors, field)
	}
}

func TestSubmitRejectsMalformedBody(t *testing.T) {
	controller, repo := newArticleController()

	rec := postJSON(t, controller.Submit, "/submit-blog", `{"title": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.articles)
}

func TestAcceptedListingIsPublicAndFiltered(t *testing.T) {
	controller, repo := newArticleController()
	repo.articles = []models.Article{
		{ID: "a1", Title: "Public post", Status: models.StatusAccepted},
		{ID: "a2", Title: "Pending post", Status: models.StatusReview},
	}

	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	rec := httptest.NewRecorder()
	controller.Accepted(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []models.ArticleView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Public post", body.Data[0].Title)
}

func TestDashboardListRequiresPrincipal(t *testing.T) {
	controller, _ := newArticleController()

	// No auth middleware ran, so there is no principal in the context.
	req := httptest.NewRequest(http.MethodGet, "/dashboard/articles", nil)
	rec := httptest.NewRecorder()
	controller.List(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
