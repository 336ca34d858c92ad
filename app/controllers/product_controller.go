package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/services"
	"github.com/terry1921/stickerstore/pkg/bind"
	"github.com/terry1921/stickerstore/pkg/middleware"
	"github.com/terry1921/stickerstore/pkg/response"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// List handles GET /products. Optional ?limit=N caps the listing.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			response.Error(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	products := c.service.List(r.Context(), limit)
	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, p.View())
	}
	response.Success(w, views)
}

// Create handles POST /dashboard/products.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	principal, _ := middleware.UserFromCtx(r.Context())
	p, err := c.service.Create(r.Context(), principal, in)
	if errors.Is(err, services.ErrForbidden) {
		response.Forbidden(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not create product")
		return
	}
	response.Created(w, p.View())
}
