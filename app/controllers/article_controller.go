package controllers

import (
	"errors"
	"net/http"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/repositories"
	"github.com/terry1921/stickerstore/app/services"
	"github.com/terry1921/stickerstore/pkg/bind"
	"github.com/terry1921/stickerstore/pkg/middleware"
	"github.com/terry1921/stickerstore/pkg/response"
	"github.com/terry1921/stickerstore/pkg/router"
)

type ArticleController struct {
	service *services.ArticleService
}

func NewArticleController(service *services.ArticleService) *ArticleController {
	return &ArticleController{service: service}
}

// Submit handles POST /submit-blog, the community submission form.
func (c *ArticleController) Submit(w http.ResponseWriter, r *http.Request) {
	var in models.ArticleInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	a, err := c.service.Submit(r.Context(), in)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not save submission")
		return
	}
	response.Created(w, a.View())
}

// Accepted handles GET /blog, the public article listing.
func (c *ArticleController) Accepted(w http.ResponseWriter, r *http.Request) {
	articles := c.service.Accepted(r.Context())
	views := make([]models.ArticleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, a.View())
	}
	response.Success(w, views)
}

// List handles GET /dashboard/articles. Optional ?status=S narrows the
// moderation view.
func (c *ArticleController) List(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.UserFromCtx(r.Context())
	articles, err := c.service.List(r.Context(), principal, r.URL.Query().Get("status"))
	if errors.Is(err, services.ErrForbidden) {
		response.Forbidden(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load articles")
		return
	}

	views := make([]models.ArticleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, a.View())
	}
	response.Success(w, views)
}

// SetStatus handles PATCH /dashboard/articles/{id}/status.
func (c *ArticleController) SetStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status string `json:"status" validate:"required"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	principal, _ := middleware.UserFromCtx(r.Context())
	a, err := c.service.SetStatus(r.Context(), principal, router.Param(r, "id"), in.Status)
	switch {
	case errors.Is(err, services.ErrForbidden):
		response.Forbidden(w)
	case errors.Is(err, services.ErrInvalidStatus):
		response.Error(w, http.StatusUnprocessableEntity, "unknown article status")
	case errors.Is(err, repositories.ErrNotFound):
		response.NotFound(w)
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "could not update article")
	default:
		response.Success(w, a.View())
	}
}
