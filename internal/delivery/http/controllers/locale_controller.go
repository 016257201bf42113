package controllers

import (
	"log/slog"
	"net/http"

	h "translationhub/internal/delivery/http/helpers"
	"translationhub/internal/domain"
)

type LocaleController struct {
	Logger  *slog.Logger
	Service domain.LocaleService
}

func NewLocaleController(logger *slog.Logger, svc domain.LocaleService) *LocaleController {
	return &LocaleController{
		Logger:  logger,
		Service: svc,
	}
}

// Index godoc
// @Summary List locales
// @Tags locales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Locale
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /locales [get]
func (c *LocaleController) Index(w http.ResponseWriter, r *http.Request) {
	locales, err := c.Service.List(r.Context())
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if locales == nil {
		locales = []*domain.Locale{}
	}
	h.WriteJSON(w, http.StatusOK, locales)
}
