package domain

import "strings"

// SearchCriteria holds the optional filters of a translation search.
// An empty field means the filter is absent.
type SearchCriteria struct {
	Key     string
	Content string
	Locale  string
	Tag     string
}

// NewSearchCriteria returns criteria with surrounding whitespace removed from every field,
// so blank values count as absent.
func NewSearchCriteria(key, content, locale, tag string) SearchCriteria {
	return SearchCriteria{
		Key:     strings.TrimSpace(key),
		Content: strings.TrimSpace(content),
		Locale:  strings.TrimSpace(locale),
		Tag:     strings.TrimSpace(tag),
	}
}
