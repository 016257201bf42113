package domain

import (
	"context"
	"strings"
)

// MaxTagNameLength is the longest accepted tag name, in characters.
const MaxTagNameLength = 50

// Tag is a free-form label shared across translations.
// swagger:model Tag
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TagRepository defines storage for tags and translation–tag links.
type TagRepository interface {
	// UpsertByName returns the id of the tag with the given name, inserting it if missing.
	UpsertByName(ctx context.Context, name string) (int64, error)
	// ReplaceTranslationTags replaces all tag links of a translation with exactly tagIDs.
	ReplaceTranslationTags(ctx context.Context, translationID int64, tagIDs []int64) error
}

// NormalizeTagNames trims each name, drops empty ones and removes duplicates,
// keeping the first occurrence order.
func NormalizeTagNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
