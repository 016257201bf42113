package postgres

import (
	"fmt"
	"strings"

	"translationhub/internal/domain"
)

const translationFrom = ` FROM translations t JOIN locales l ON l.id = t.locale_id`

const tagExistsClause = `EXISTS (SELECT 1 FROM translation_tag tt JOIN tags g ON g.id = tt.tag_id WHERE tt.translation_id = t.id AND g.name = $%d)`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// filter accumulates AND-ed predicates and their positional arguments.
type filter struct {
	clauses []string
	args    []any
}

// add appends a predicate whose single %d verb becomes the next placeholder number.
func (f *filter) add(clause string, arg any) {
	f.args = append(f.args, arg)
	f.clauses = append(f.clauses, fmt.Sprintf(clause, len(f.args)))
}

func (f *filter) where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// next returns the placeholder number following the filter arguments.
func (f *filter) next() int {
	return len(f.args) + 1
}

// buildTranslationFilter folds the present criteria into one predicate each.
// Queries using it must select from translationFrom.
func buildTranslationFilter(c domain.SearchCriteria) *filter {
	f := &filter{}
	if c.Key != "" {
		f.add(`t.key LIKE $%d`, containsPattern(c.Key))
	}
	if c.Content != "" {
		f.add(`t.content LIKE $%d`, containsPattern(c.Content))
	}
	if c.Locale != "" {
		f.add(`l.code = $%d`, c.Locale)
	}
	if c.Tag != "" {
		f.add(tagExistsClause, c.Tag)
	}
	return f
}

// containsPattern returns a LIKE pattern matching s literally anywhere in the value.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
