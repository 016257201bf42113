package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	h "translationhub/internal/delivery/http/helpers"
	"translationhub/internal/delivery/http/middleware"
	"translationhub/internal/domain"
)

// IssueTokenRequest is the request body for POST /api/auth/token
type IssueTokenRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	DeviceName string `json:"device_name"`
}

// Validate implements validation.Validatable.
func (r IssueTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.DeviceName, validation.RuneLength(0, 255)),
	)
}

// TokenResponse is the response body for POST /api/auth/token
type TokenResponse struct {
	Token string `json:"token"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Token godoc
// @Summary Issue an API token
// @Description Exchange email and password for a bearer token. device_name labels the stored token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body IssueTokenRequest true "Credentials"
// @Success 200 {object} controllers.TokenResponse
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.ErrorResponse "error.code: validation_error"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /auth/token [post]
func (c *AuthController) Token(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	token, err := c.Service.IssueToken(r.Context(), email, req.Password, strings.TrimSpace(req.DeviceName))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// Logout godoc
// @Summary Revoke the current token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "Unauthenticated.")
		return
	}
	if err := c.Service.Logout(r.Context(), principal.TokenID); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.MessageResponse{Message: "Logged out."})
}
