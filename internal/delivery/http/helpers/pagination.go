package helpers

import (
	"net/http"
	"strconv"

	"translationhub/internal/domain"
)

// ParsePage reads the page query parameter. Missing, invalid or non-positive values yield 1.
func ParsePage(r *http.Request) int {
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			return v
		}
	}
	return 1
}

// PageResponse is the payload of paginated translation listings.
// From and To are null when the page is empty.
// swagger:model PageResponse
type PageResponse struct {
	Data        []*domain.Translation `json:"data"`
	CurrentPage int                   `json:"current_page"`
	PerPage     int                   `json:"per_page"`
	LastPage    int                   `json:"last_page"`
	Total       int                   `json:"total"`
	From        *int                  `json:"from"`
	To          *int                  `json:"to"`
}

// NewPageResponse builds a PageResponse from a service page.
func NewPageResponse(p *domain.TranslationPage) PageResponse {
	items := p.Items
	if items == nil {
		items = []*domain.Translation{}
	}
	resp := PageResponse{
		Data:        items,
		CurrentPage: p.Params.Page,
		PerPage:     p.Params.PageSize,
		LastPage:    p.Params.LastPage(p.Total),
		Total:       p.Total,
	}
	if len(items) > 0 {
		from := p.Params.Offset() + 1
		to := p.Params.Offset() + len(items)
		resp.From, resp.To = &from, &to
	}
	return resp
}
