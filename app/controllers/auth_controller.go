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
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register handles POST /register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in models.RegisterInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	u, err := c.service.SignUp(r.Context(), in)
	if errors.Is(err, services.ErrEmailTaken) {
		response.Error(w, http.StatusConflict, "email already registered")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not create account")
		return
	}
	response.Created(w, u.View())
}

// Login handles POST /login. Valid credentials on an unverified account
// are rejected with a distinguished code so the client can offer a
// verification resend instead of a generic failure.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, u, err := c.service.SignInEmail(r.Context(), in)
	switch {
	case errors.Is(err, services.ErrUnverifiedEmail):
		response.DomainError(w, http.StatusForbidden, "unverified-email",
			"verify your email address before signing in")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "invalid credentials")
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "sign-in failed")
	default:
		response.Success(w, map[string]interface{}{
			"token": token,
			"user":  u.View(),
		})
	}
}

// LoginGoogle handles POST /login/google.
func (c *AuthController) LoginGoogle(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Credential string `json:"credential" validate:"required"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, u, err := c.service.SignInGoogle(r.Context(), in.Credential)
	switch {
	case errors.Is(err, services.ErrUnverifiedEmail):
		response.DomainError(w, http.StatusForbidden, "unverified-email",
			"verify your email address before signing in")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "invalid credentials")
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "sign-in failed")
	default:
		response.Success(w, map[string]interface{}{
			"token": token,
			"user":  u.View(),
		})
	}
}

// Logout handles POST /logout. Sessions are stateless JWTs, so logout is
// a client-side discard; the endpoint exists so the client flow has a
// server acknowledgement.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"message": "signed out"})
}

// Me handles GET /me.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.UserFromCtx(r.Context())
	u, err := c.service.Profile(r.Context(), principal)
	if errors.Is(err, services.ErrNoSession) {
		response.Unauthorized(w)
		return
	}
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load profile")
		return
	}
	response.Success(w, u.View())
}

// ResendVerification handles POST /verification/resend.
func (c *AuthController) ResendVerification(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.UserFromCtx(r.Context())
	err := c.service.ResendVerification(r.Context(), principal)
	if errors.Is(err, services.ErrNoSession) {
		response.Unauthorized(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not send verification mail")
		return
	}
	response.Success(w, map[string]string{"message": "verification mail sent"})
}

// VerifyEmail handles GET /verification.
func (c *AuthController) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.Error(w, http.StatusBadRequest, "missing verification token")
		return
	}
	if err := c.service.VerifyEmail(r.Context(), token); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid or expired verification token")
		return
	}
	response.Success(w, map[string]string{"message": "email verified"})
}
