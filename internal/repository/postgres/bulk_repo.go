package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"translationhub/internal/domain"
)

type bulkTranslationWriter struct {
	DB *sql.DB
}

// NewBulkTranslationWriter returns a domain.BulkTranslationWriter. It needs the pool rather than
// a DBTX because COPY runs in its own transaction.
func NewBulkTranslationWriter(db *sql.DB) domain.BulkTranslationWriter {
	return &bulkTranslationWriter{DB: db}
}

func (w *bulkTranslationWriter) InsertTranslations(ctx context.Context, rows []domain.NewTranslationRow) ([]int64, error) {
	if len(rows) == 0 {
		return []int64{}, nil
	}
	keys := make([]string, len(rows))
	contents := make([]string, len(rows))
	localeIDs := make([]int64, len(rows))
	for i, r := range rows {
		keys[i], contents[i], localeIDs[i] = r.Key, r.Content, r.LocaleID
	}

	query := `
		INSERT INTO translations (key, content, locale_id, created_at, updated_at)
		SELECT u.key, u.content, u.locale_id, NOW(), NOW()
		FROM unnest($1::text[], $2::text[], $3::bigint[]) AS u(key, content, locale_id)
		ON CONFLICT (locale_id, key) DO NOTHING
		RETURNING id
	`
	res, err := w.DB.QueryContext(ctx, query, pq.Array(keys), pq.Array(contents), pq.Array(localeIDs))
	if err != nil {
		return nil, fmt.Errorf("bulk insert translations: %w", err)
	}
	defer res.Close()

	ids := make([]int64, 0, len(rows))
	for res.Next() {
		var id int64
		if err := res.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (w *bulkTranslationWriter) AttachTags(ctx context.Context, links []domain.TranslationTagLink) (err error) {
	if len(links) == 0 {
		return nil
	}
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("translation_tag", "translation_id", "tag_id"))
	if err != nil {
		return fmt.Errorf("prepare copy: %w", err)
	}
	for _, l := range links {
		if _, err = stmt.ExecContext(ctx, l.TranslationID, l.TagID); err != nil {
			_ = stmt.Close()
			return fmt.Errorf("copy translation_tag row: %w", err)
		}
	}
	if _, err = stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return fmt.Errorf("flush copy: %w", err)
	}
	if err = stmt.Close(); err != nil {
		return fmt.Errorf("close copy: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
