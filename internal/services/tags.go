package services

import (
	"context"
	"fmt"
	"sort"
	"unicode/utf8"

	"translationhub/internal/domain"
)

// validateTagNames rejects names that would not fit the tags table after trimming.
func validateTagNames(names []string) error {
	for _, n := range domain.NormalizeTagNames(names) {
		if utf8.RuneCountInString(n) > domain.MaxTagNameLength {
			return domain.NewValidationError("tags", fmt.Sprintf("each tag may not be greater than %d characters", domain.MaxTagNameLength))
		}
	}
	return nil
}

// reconcileTags makes the tag set of a translation exactly the normalized names, creating
// unknown tags. It must run inside the caller's transaction so readers never see a partial set.
func reconcileTags(ctx context.Context, repo domain.TagRepository, translationID int64, names []string) error {
	normalized := domain.NormalizeTagNames(names)
	// Upsert in name order so concurrent writers lock tag rows in the same order.
	sorted := append([]string(nil), normalized...)
	sort.Strings(sorted)

	ids := make([]int64, 0, len(sorted))
	for _, name := range sorted {
		id, err := repo.UpsertByName(ctx, name)
		if err != nil {
			return fmt.Errorf("upsert tag %q: %w", name, err)
		}
		ids = append(ids, id)
	}
	if err := repo.ReplaceTranslationTags(ctx, translationID, ids); err != nil {
		return fmt.Errorf("replace tags of translation %d: %w", translationID, err)
	}
	return nil
}
