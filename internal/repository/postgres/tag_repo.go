package postgres

import (
	"context"

	"github.com/lib/pq"

	"translationhub/internal/domain"
)

type tagRepository struct {
	DB DBTX
}

// NewTagRepository returns a domain.TagRepository implemented with Postgres.
func NewTagRepository(db DBTX) domain.TagRepository {
	return &tagRepository{DB: db}
}

// UpsertByName relies on the unique name constraint, so concurrent callers creating the same tag
// both get the single row's id.
func (r *tagRepository) UpsertByName(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO tags (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *tagRepository) ReplaceTranslationTags(ctx context.Context, translationID int64, tagIDs []int64) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM translation_tag WHERE translation_id = $1`, translationID); err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO translation_tag (translation_id, tag_id)
		 SELECT $1, unnest($2::bigint[])
		 ON CONFLICT (translation_id, tag_id) DO NOTHING`,
		translationID, pq.Array(tagIDs))
	return err
}

func listTagsByTranslationIDs(ctx context.Context, db DBTX, translationIDs []int64) (map[int64][]*domain.Tag, error) {
	out := make(map[int64][]*domain.Tag, len(translationIDs))
	if len(translationIDs) == 0 {
		return out, nil
	}
	rows, err := db.QueryContext(ctx,
		`SELECT tt.translation_id, g.id, g.name FROM translation_tag tt
		 JOIN tags g ON g.id = tt.tag_id
		 WHERE tt.translation_id = ANY($1)
		 ORDER BY tt.translation_id, g.name`, pq.Array(translationIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var translationID int64
		var tag domain.Tag
		if err := rows.Scan(&translationID, &tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		out[translationID] = append(out[translationID], &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
