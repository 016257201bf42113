package postgres

import (
	"context"
	"database/sql"
	"errors"

	"translationhub/internal/domain"
)

type localeRepository struct {
	DB DBTX
}

// NewLocaleRepository returns a domain.LocaleRepository implemented with Postgres.
func NewLocaleRepository(db DBTX) domain.LocaleRepository {
	return &localeRepository{DB: db}
}

func (r *localeRepository) GetByCode(ctx context.Context, code string) (*domain.Locale, error) {
	l := &domain.Locale{}
	err := r.DB.QueryRowContext(ctx, `SELECT id, code, name FROM locales WHERE code = $1`, code).Scan(&l.ID, &l.Code, &l.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *localeRepository) List(ctx context.Context) ([]*domain.Locale, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, code, name FROM locales ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locales := []*domain.Locale{}
	for rows.Next() {
		var l domain.Locale
		if err := rows.Scan(&l.ID, &l.Code, &l.Name); err != nil {
			return nil, err
		}
		locales = append(locales, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return locales, nil
}

// Ensure keeps the stored name of an existing locale.
func (r *localeRepository) Ensure(ctx context.Context, code, name string) (*domain.Locale, error) {
	l := &domain.Locale{}
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO locales (code, name) VALUES ($1, $2)
		 ON CONFLICT (code) DO UPDATE SET code = EXCLUDED.code
		 RETURNING id, code, name`, code, name).Scan(&l.ID, &l.Code, &l.Name)
	if err != nil {
		return nil, err
	}
	return l, nil
}
