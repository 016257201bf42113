package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"translationhub/internal/domain"
)

const exportKeyPrefix = "translations.export."

type exportService struct {
	translations   domain.TranslationRepository
	versions       domain.CacheVersionRepository
	cache          domain.ExportCache
	logger         *slog.Logger
	group          singleflight.Group
	contextTimeout time.Duration
}

// NewExportService returns an ExportService that serves payloads from cache under
// version-scoped keys and rebuilds them from translations on a miss.
func NewExportService(translations domain.TranslationRepository, versions domain.CacheVersionRepository, cache domain.ExportCache, logger *slog.Logger, timeout time.Duration) domain.ExportService {
	return &exportService{
		translations:   translations,
		versions:       versions,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// ExportCacheKey returns the cache key of an export for a version, locale and optional tag.
// Bumping the version makes every previous key unreachable.
func ExportCacheKey(version int64, locale, tag string) string {
	sum := sha256.Sum256([]byte(locale + "\x00" + tag))
	return fmt.Sprintf("%s%d.%s", exportKeyPrefix, version, hex.EncodeToString(sum[:]))
}

// Export returns the JSON object mapping each translation key of locale (narrowed to tag when
// non-empty) to its id and content. Cache failures degrade to a rebuild; storage failures are returned.
func (s *exportService) Export(ctx context.Context, locale, tag string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	locale = strings.TrimSpace(locale)
	tag = strings.TrimSpace(tag)

	version, err := s.versions.Current(ctx, domain.TranslationsCacheVersionKey)
	if err != nil {
		s.logger.WarnContext(ctx, "cache version read failed, using initial version", "err", err)
		version = 1
	}
	key := ExportCacheKey(version, locale, tag)

	body, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "export cache read failed", "key", key, "err", err)
	} else if ok {
		return body, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.build(ctx, key, locale, tag)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// build detaches from the caller's cancellation because callers collapsed onto the same key share the result.
func (s *exportService) build(ctx context.Context, key, locale, tag string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.contextTimeout)
	defer cancel()

	rows, err := s.translations.ExportRows(ctx, domain.SearchCriteria{Locale: locale, Tag: tag})
	if err != nil {
		return nil, fmt.Errorf("load export rows: %w", err)
	}
	payload := make(map[string]domain.ExportEntry, len(rows))
	for _, row := range rows {
		payload[row.Key] = domain.ExportEntry{ID: row.ID, Content: row.Content}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	if err := s.cache.Set(ctx, key, body); err != nil {
		s.logger.WarnContext(ctx, "export cache write failed", "key", key, "err", err)
	}
	s.logger.DebugContext(ctx, "export rebuilt", "locale", locale, "tag", tag, "entries", len(payload))
	return body, nil
}
