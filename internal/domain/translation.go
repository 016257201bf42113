package domain

import (
	"context"
	"time"
)

// MaxTranslationKeyLength is the longest accepted translation key.
const MaxTranslationKeyLength = 255

// Translation is a localized text string identified by a dotted key within a locale.
// swagger:model Translation
type Translation struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Content   string    `json:"content"`
	LocaleID  int64     `json:"locale_id"`
	Locale    *Locale   `json:"locale,omitempty"`
	Tags      []*Tag    `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTranslationInput carries the fields of a new translation. Locale is a locale code.
type CreateTranslationInput struct {
	Key     string
	Content string
	Locale  string
	Tags    []string
}

// UpdateTranslationInput carries a partial update. A nil Content keeps the current value;
// a nil Tags leaves the tag set untouched, while a non-nil empty slice clears it.
type UpdateTranslationInput struct {
	Content *string
	Tags    *[]string
}

// TranslationPage is one page of a translation listing.
type TranslationPage struct {
	Items  []*Translation
	Total  int
	Params PaginationParams
}

// TranslationRepository defines storage for translations.
type TranslationRepository interface {
	// Create inserts t and sets its ID and timestamps. Returns ErrConflict when the key already exists in the locale.
	Create(ctx context.Context, t *Translation) error
	// GetByID returns the translation with its locale and tags loaded.
	GetByID(ctx context.Context, id int64) (*Translation, error)
	// UpdateContent locks the row and sets content when non-nil; updated_at is always refreshed.
	UpdateContent(ctx context.Context, id int64, content *string) error
	Delete(ctx context.Context, id int64) error
	// Search returns one page of translations matching c, ordered by id, and the total match count.
	Search(ctx context.Context, c SearchCriteria, p PaginationParams) ([]*Translation, int, error)
	// ExportRows returns id, key and content of every translation matching c.
	ExportRows(ctx context.Context, c SearchCriteria) ([]ExportRow, error)
}

// TranslationService defines the business logic for managing translations.
type TranslationService interface {
	List(ctx context.Context, page int) (*TranslationPage, error)
	Search(ctx context.Context, c SearchCriteria, page int) (*TranslationPage, error)
	Get(ctx context.Context, id int64) (*Translation, error)
	Create(ctx context.Context, in CreateTranslationInput) (*Translation, error)
	Update(ctx context.Context, id int64, in UpdateTranslationInput) (*Translation, error)
	Delete(ctx context.Context, id int64) error
}
