package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepository_UpsertByName(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		tagName string
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
	}{
		{
			name:    "returns id of new or existing tag",
			tagName: "web",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO tags \(name\) VALUES \(\$1\)\s+ON CONFLICT \(name\) DO UPDATE`).
					WithArgs("web").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
			},
			wantID: 3,
		},
		{
			name:    "db error",
			tagName: "mobile",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO tags`).
					WithArgs("mobile").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			got, err := NewTagRepository(db).UpsertByName(ctx, tt.tagName)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTagRepository_ReplaceTranslationTags(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		tagIDs  []int64
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name:   "replaces links with the target set",
			tagIDs: []int64{1, 2},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM translation_tag WHERE translation_id = \$1`).
					WithArgs(int64(10)).
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec(`INSERT INTO translation_tag .* unnest\(\$2::bigint\[\]\)`).
					WithArgs(int64(10), pq.Array([]int64{1, 2})).
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
		},
		{
			name:   "empty set only clears",
			tagIDs: nil,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM translation_tag`).
					WithArgs(int64(10)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "delete error stops before insert",
			tagIDs: []int64{1},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM translation_tag`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
		{
			name:   "insert error",
			tagIDs: []int64{1},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM translation_tag`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`INSERT INTO translation_tag`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			err = NewTagRepository(db).ReplaceTranslationTags(ctx, 10, tt.tagIDs)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListTagsByTranslationIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("groups tags per translation", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`WHERE tt.translation_id = ANY\(\$1\)`).
			WithArgs(pq.Array([]int64{1, 2, 3})).
			WillReturnRows(sqlmock.NewRows([]string{"translation_id", "id", "name"}).
				AddRow(int64(1), int64(5), "desktop").
				AddRow(int64(1), int64(4), "web").
				AddRow(int64(3), int64(4), "web"))

		got, err := listTagsByTranslationIDs(ctx, db, []int64{1, 2, 3})
		require.NoError(t, err)
		require.Len(t, got[1], 2)
		assert.Equal(t, "desktop", got[1][0].Name)
		assert.Nil(t, got[2])
		require.Len(t, got[3], 1)
		assert.Equal(t, int64(4), got[3][0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no ids issues no query", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		got, err := listTagsByTranslationIDs(ctx, db, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
