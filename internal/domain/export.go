package domain

import "context"

// TranslationsCacheVersionKey names the counter that versions every export cache key.
const TranslationsCacheVersionKey = "translations.cache_version"

// ExportRow is the projection of a translation read by an export.
type ExportRow struct {
	ID      int64
	Key     string
	Content string
}

// ExportEntry is the value stored under each key of an export payload.
// swagger:model ExportEntry
type ExportEntry struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// CacheVersionRepository stores monotonically increasing version counters.
type CacheVersionRepository interface {
	// Current returns the counter value, or 1 when it was never bumped.
	Current(ctx context.Context, key string) (int64, error)
	// Bump atomically increments the counter and returns the new value.
	Bump(ctx context.Context, key string) (int64, error)
}

// ExportCache stores encoded export payloads for a bounded time.
type ExportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// ExportService produces the JSON export of a locale, optionally narrowed to a tag.
type ExportService interface {
	Export(ctx context.Context, locale, tag string) ([]byte, error)
}
