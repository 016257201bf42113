package domain

import "context"

// Repositories groups the stores a single unit of work may touch.
type Repositories struct {
	Translations  TranslationRepository
	Tags          TagRepository
	Locales       LocaleRepository
	CacheVersions CacheVersionRepository
}

// Transactor runs fn with repositories bound to one database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}
