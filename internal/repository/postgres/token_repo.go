package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"translationhub/internal/domain"
)

type tokenRepository struct {
	DB DBTX
}

// NewTokenRepository returns a domain.TokenRepository backed by the api_tokens table.
func NewTokenRepository(db DBTX) domain.TokenRepository {
	return &tokenRepository{DB: db}
}

func (r *tokenRepository) Create(ctx context.Context, t *domain.APIToken) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO api_tokens (id, user_id, name, created_at, expires_at) VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.UserID, t.Name, t.CreatedAt, t.ExpiresAt)
	return err
}

func (r *tokenRepository) GetByID(ctx context.Context, id string) (*domain.APIToken, error) {
	t := &domain.APIToken{}
	var lastUsed sql.NullTime
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, user_id, name, created_at, expires_at, last_used_at FROM api_tokens WHERE id = $1`, id).
		Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt, &t.ExpiresAt, &lastUsed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if lastUsed.Valid {
		t.LastUsedAt = &lastUsed.Time
	}
	return t, nil
}

func (r *tokenRepository) Touch(ctx context.Context, id string, at time.Time) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE api_tokens SET last_used_at = $2 WHERE id = $1`, id, at)
	return err
}

func (r *tokenRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM api_tokens WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
