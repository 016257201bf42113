package controllers

import (
	"log/slog"
	"net/http"

	h "translationhub/internal/delivery/http/helpers"
	"translationhub/internal/domain"
)

const exportCacheControl = "public, max-age=60"

type ExportController struct {
	Logger  *slog.Logger
	Service domain.ExportService
}

func NewExportController(logger *slog.Logger, svc domain.ExportService) *ExportController {
	return &ExportController{
		Logger:  logger,
		Service: svc,
	}
}

// Export godoc
// @Summary Export a locale
// @Description Returns a JSON object mapping each translation key to {id, content}. An unknown locale yields {}.
// @Tags export
// @Produce json
// @Security BearerAuth
// @Param locale path string true "Locale code"
// @Param tag query string false "Only translations carrying this tag"
// @Success 200 {object} map[string]domain.ExportEntry
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /export/{locale} [get]
func (c *ExportController) Export(w http.ResponseWriter, r *http.Request) {
	body, err := c.Service.Export(r.Context(), r.PathValue("locale"), r.URL.Query().Get("tag"))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", exportCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
