package domain

import "context"

// Locale is a language/region variant translations are scoped to (e.g. "en").
// swagger:model Locale
type Locale struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// LocaleRepository defines storage for locales.
type LocaleRepository interface {
	GetByCode(ctx context.Context, code string) (*Locale, error)
	List(ctx context.Context) ([]*Locale, error)
	// Ensure returns the locale with the given code, creating it with name if missing.
	Ensure(ctx context.Context, code, name string) (*Locale, error)
}

// LocaleService exposes locale lookups to the delivery layer.
type LocaleService interface {
	List(ctx context.Context) ([]*Locale, error)
}
