package domain

import "context"

// NewTranslationRow is one translation written by a bulk load.
type NewTranslationRow struct {
	Key      string
	Content  string
	LocaleID int64
}

// TranslationTagLink attaches a tag to a translation.
type TranslationTagLink struct {
	TranslationID int64
	TagID         int64
}

// BulkTranslationWriter loads large batches of translations for seeding and load testing.
type BulkTranslationWriter interface {
	// InsertTranslations inserts rows, skipping keys already present in their locale,
	// and returns the ids of the rows actually inserted.
	InsertTranslations(ctx context.Context, rows []NewTranslationRow) ([]int64, error)
	// AttachTags links translations to tags in one round trip.
	AttachTags(ctx context.Context, links []TranslationTagLink) error
}
