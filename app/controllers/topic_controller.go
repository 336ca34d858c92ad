package controllers

import (
	"errors"
	"net/http"

	"github.com/terry1921/stickerstore/app/services"
	"github.com/terry1921/stickerstore/pkg/bind"
	"github.com/terry1921/stickerstore/pkg/response"
)

type TopicController struct {
	service *services.TopicService
}

func NewTopicController(service *services.TopicService) *TopicController {
	return &TopicController{service: service}
}

// Suggest handles POST /topic-suggestion.
func (c *TopicController) Suggest(w http.ResponseWriter, r *http.Request) {
	var in struct {
		StoreFocus string `json:"storeFocus" validate:"required,min=10"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	topics, err := c.service.Suggest(r.Context(), in.StoreFocus)
	if errors.Is(err, services.ErrFocusTooShort) {
		response.Error(w, http.StatusUnprocessableEntity, "store focus must be at least 10 characters")
		return
	}
	if err != nil {
		// Upstream details stay in the log; the client gets a retry hint.
		response.Error(w, http.StatusBadGateway, "could not generate topics, try again later")
		return
	}
	response.Success(w, map[string]interface{}{"topics": topics})
}
