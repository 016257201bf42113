package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"translationhub/internal/domain"
)

const translationColumns = `SELECT t.id, t.key, t.content, t.locale_id, t.created_at, t.updated_at, l.id, l.code, l.name`

type translationRepository struct {
	DB DBTX
}

// NewTranslationRepository returns a domain.TranslationRepository implemented with Postgres.
func NewTranslationRepository(db DBTX) domain.TranslationRepository {
	return &translationRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTranslation(s rowScanner) (*domain.Translation, error) {
	t := &domain.Translation{Locale: &domain.Locale{}}
	if err := s.Scan(&t.ID, &t.Key, &t.Content, &t.LocaleID, &t.CreatedAt, &t.UpdatedAt,
		&t.Locale.ID, &t.Locale.Code, &t.Locale.Name); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *translationRepository) Create(ctx context.Context, t *domain.Translation) error {
	query := `
		INSERT INTO translations (key, content, locale_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, t.Key, t.Content, t.LocaleID, t.CreatedAt, t.UpdatedAt).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("translation %q: %w", t.Key, domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *translationRepository) GetByID(ctx context.Context, id int64) (*domain.Translation, error) {
	query := translationColumns + translationFrom + ` WHERE t.id = $1`
	t, err := scanTranslation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.attachTags(ctx, []*domain.Translation{t}); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *translationRepository) UpdateContent(ctx context.Context, id int64, content *string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE translations SET content = COALESCE($2, content), updated_at = NOW() WHERE id = $1`,
		id, content)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *translationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM translations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *translationRepository) Search(ctx context.Context, c domain.SearchCriteria, p domain.PaginationParams) ([]*domain.Translation, int, error) {
	f := buildTranslationFilter(c)

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*)`+translationFrom+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count translations: %w", err)
	}
	items := []*domain.Translation{}
	if total == 0 || p.Offset() >= total {
		return items, total, nil
	}

	n := f.next()
	query := translationColumns + translationFrom + f.where() +
		fmt.Sprintf(` ORDER BY t.id LIMIT $%d OFFSET $%d`, n, n+1)
	args := append(append([]any{}, f.args...), p.PageSize, p.Offset())
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := r.attachTags(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *translationRepository) ExportRows(ctx context.Context, c domain.SearchCriteria) ([]domain.ExportRow, error) {
	f := buildTranslationFilter(c)
	rows, err := r.DB.QueryContext(ctx, `SELECT t.id, t.key, t.content`+translationFrom+f.where()+` ORDER BY t.id`, f.args...)
	if err != nil {
		return nil, fmt.Errorf("export translations: %w", err)
	}
	defer rows.Close()

	var out []domain.ExportRow
	for rows.Next() {
		var row domain.ExportRow
		if err := rows.Scan(&row.ID, &row.Key, &row.Content); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// attachTags loads the tags of all given translations in one query.
func (r *translationRepository) attachTags(ctx context.Context, items []*domain.Translation) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int64, len(items))
	for i, t := range items {
		ids[i] = t.ID
	}
	byID, err := listTagsByTranslationIDs(ctx, r.DB, ids)
	if err != nil {
		return fmt.Errorf("load translation tags: %w", err)
	}
	for _, t := range items {
		t.Tags = byID[t.ID]
		if t.Tags == nil {
			t.Tags = []*domain.Tag{}
		}
	}
	return nil
}
