package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"translationhub/internal/domain"
)

func TestBuildTranslationFilter(t *testing.T) {
	tests := []struct {
		name      string
		criteria  domain.SearchCriteria
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no criteria",
			criteria:  domain.SearchCriteria{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "key only",
			criteria:  domain.SearchCriteria{Key: "home"},
			wantWhere: " WHERE t.key LIKE $1",
			wantArgs:  []any{"%home%"},
		},
		{
			name:      "locale and tag",
			criteria:  domain.SearchCriteria{Locale: "en", Tag: "web"},
			wantWhere: " WHERE l.code = $1 AND EXISTS (SELECT 1 FROM translation_tag tt JOIN tags g ON g.id = tt.tag_id WHERE tt.translation_id = t.id AND g.name = $2)",
			wantArgs:  []any{"en", "web"},
		},
		{
			name:     "all criteria numbered in order",
			criteria: domain.SearchCriteria{Key: "a", Content: "b", Locale: "fr", Tag: "mobile"},
			wantWhere: " WHERE t.key LIKE $1 AND t.content LIKE $2 AND l.code = $3 AND " +
				"EXISTS (SELECT 1 FROM translation_tag tt JOIN tags g ON g.id = tt.tag_id WHERE tt.translation_id = t.id AND g.name = $4)",
			wantArgs: []any{"%a%", "%b%", "fr", "mobile"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := buildTranslationFilter(tt.criteria)
			assert.Equal(t, tt.wantWhere, f.where())
			assert.Equal(t, tt.wantArgs, f.args)
			assert.Equal(t, len(tt.wantArgs)+1, f.next())
		})
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%home.title%", containsPattern("home.title"))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%snake\_case%`, containsPattern("snake_case"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
