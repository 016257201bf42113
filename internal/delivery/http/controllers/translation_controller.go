package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	h "translationhub/internal/delivery/http/helpers"
	"translationhub/internal/domain"
)

var tagNameRule = validation.Each(validation.RuneLength(0, domain.MaxTagNameLength))

// CreateTranslationRequest is the request body for POST /api/translations
type CreateTranslationRequest struct {
	Key     string   `json:"key"`
	Content string   `json:"content"`
	Locale  string   `json:"locale"`
	Tags    []string `json:"tags"`
}

// Validate implements validation.Validatable.
func (r CreateTranslationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Key, validation.Required, validation.RuneLength(1, domain.MaxTranslationKeyLength)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Locale, validation.Required),
		validation.Field(&r.Tags, tagNameRule),
	)
}

// UpdateTranslationRequest is the request body for PUT /api/translations/{id}.
// Omitted fields are left unchanged; an empty tags array clears the tags.
type UpdateTranslationRequest struct {
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// Validate implements validation.Validatable.
func (r UpdateTranslationRequest) Validate() error {
	var tags []string
	if r.Tags != nil {
		tags = *r.Tags
	}
	return validation.Errors{
		"content": validation.Validate(r.Content, validation.NilOrNotEmpty),
		"tags":    validation.Validate(tags, tagNameRule),
	}.Filter()
}

type TranslationController struct {
	Logger  *slog.Logger
	Service domain.TranslationService
}

func NewTranslationController(logger *slog.Logger, svc domain.TranslationService) *TranslationController {
	return &TranslationController{
		Logger:  logger,
		Service: svc,
	}
}

// Index godoc
// @Summary List translations
// @Description Returns translations ordered by id, 50 per page, with locale and tags.
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} helpers.PageResponse
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /translations [get]
func (c *TranslationController) Index(w http.ResponseWriter, r *http.Request) {
	page, err := c.Service.List(r.Context(), h.ParsePage(r))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.NewPageResponse(page))
}

// Search godoc
// @Summary Search translations
// @Description Filters are combined with AND. key and content match substrings, locale and tag match exactly.
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Param key query string false "Key substring"
// @Param content query string false "Content substring"
// @Param locale query string false "Locale code"
// @Param tag query string false "Tag name"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} helpers.PageResponse
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /translations/search [get]
func (c *TranslationController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := domain.NewSearchCriteria(q.Get("key"), q.Get("content"), q.Get("locale"), q.Get("tag"))
	page, err := c.Service.Search(r.Context(), criteria, h.ParsePage(r))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.NewPageResponse(page))
}

// Show godoc
// @Summary Get a translation
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Translation ID"
// @Success 200 {object} domain.Translation
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /translations/{id} [get]
func (c *TranslationController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := translationID(w, r)
	if !ok {
		return
	}
	t, err := c.Service.Get(r.Context(), id)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, t)
}

// Store godoc
// @Summary Create a translation
// @Description The locale must exist. Tags are created on first use.
// @Tags translations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTranslationRequest true "Translation"
// @Success 201 {object} domain.Translation
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.ErrorResponse "error.code: validation_error"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /translations [post]
func (c *TranslationController) Store(w http.ResponseWriter, r *http.Request) {
	var req CreateTranslationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.Service.Create(r.Context(), domain.CreateTranslationInput{
		Key:     req.Key,
		Content: req.Content,
		Locale:  req.Locale,
		Tags:    req.Tags,
	})
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, t)
}

// Update godoc
// @Summary Update a translation
// @Description Replaces content and/or the full tag set. Key and locale are immutable.
// @Tags translations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Translation ID"
// @Param body body UpdateTranslationRequest true "Fields to change"
// @Success 200 {object} domain.Translation
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 422 {object} helpers.ErrorResponse "error.code: validation_error"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /translations/{id} [put]
func (c *TranslationController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := translationID(w, r)
	if !ok {
		return
	}
	var req UpdateTranslationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.Service.Update(r.Context(), id, domain.UpdateTranslationInput{
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, t)
}

// Destroy godoc
// @Summary Delete a translation
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Translation ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /translations/{id} [delete]
func (c *TranslationController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := translationID(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.MessageResponse{Message: "Deleted successfully"})
}

// translationID parses the {id} path value. Non-numeric ids cannot match a row, so they answer 404.
func translationID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "Resource not found.")
		return 0, false
	}
	return id, true
}
