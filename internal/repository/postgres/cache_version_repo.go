package postgres

import (
	"context"
	"database/sql"
	"errors"

	"translationhub/internal/domain"
)

type cacheVersionRepository struct {
	DB DBTX
}

// NewCacheVersionRepository returns a domain.CacheVersionRepository backed by the cache_versions table.
func NewCacheVersionRepository(db DBTX) domain.CacheVersionRepository {
	return &cacheVersionRepository{DB: db}
}

func (r *cacheVersionRepository) Current(ctx context.Context, key string) (int64, error) {
	var v int64
	err := r.DB.QueryRowContext(ctx, `SELECT value FROM cache_versions WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 1, nil
		}
		return 0, err
	}
	return v, nil
}

// Bump increments in a single statement, so concurrent writers never lose an increment.
// A missing counter starts at 1 and becomes 2.
func (r *cacheVersionRepository) Bump(ctx context.Context, key string) (int64, error) {
	var v int64
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO cache_versions (key, value) VALUES ($1, 2)
		 ON CONFLICT (key) DO UPDATE SET value = cache_versions.value + 1
		 RETURNING value`, key).Scan(&v)
	if err != nil {
		return 0, err
	}
	return v, nil
}
