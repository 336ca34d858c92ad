package controllers

import (
	"net/http"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/services"
	"github.com/terry1921/stickerstore/config"
	"github.com/terry1921/stickerstore/pkg/response"
)

// featuredCount is how many products the landing payload carries.
const featuredCount = 3

type StoreController struct {
	products *services.ProductService
}

func NewStoreController(products *services.ProductService) *StoreController {
	return &StoreController{products: products}
}

// Home handles GET /: the store profile plus the newest products.
func (c *StoreController) Home(w http.ResponseWriter, r *http.Request) {
	featured := c.products.Featured(r.Context(), featuredCount)
	views := make([]models.ProductView, 0, len(featured))
	for _, p := range featured {
		views = append(views, p.View())
	}

	response.Success(w, map[string]interface{}{
		"store": map[string]string{
			"name":  config.StoreName(),
			"blurb": config.StoreBlurb(),
			"link":  config.StoreLink(),
		},
		"featured": views,
	})
}
