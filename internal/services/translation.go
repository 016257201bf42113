package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"translationhub/internal/domain"
)

type translationService struct {
	repos          domain.Repositories
	tx             domain.Transactor
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewTranslationService returns a TranslationService. Reads go through repos; every write runs in
// one transaction from tx that also reconciles tags and bumps the export cache version.
func NewTranslationService(repos domain.Repositories, tx domain.Transactor, logger *slog.Logger, timeout time.Duration) domain.TranslationService {
	return &translationService{
		repos:          repos,
		tx:             tx,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *translationService) List(ctx context.Context, page int) (*domain.TranslationPage, error) {
	return s.Search(ctx, domain.SearchCriteria{}, page)
}

func (s *translationService) Search(ctx context.Context, c domain.SearchCriteria, page int) (*domain.TranslationPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	params := domain.PaginationParams{Page: page, PageSize: domain.TranslationPageSize}
	items, total, err := s.repos.Translations.Search(ctx, c, params)
	if err != nil {
		return nil, fmt.Errorf("search translations: %w", err)
	}
	return &domain.TranslationPage{Items: items, Total: total, Params: params}, nil
}

func (s *translationService) Get(ctx context.Context, id int64) (*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.repos.Translations.GetByID(ctx, id)
}

func (s *translationService) Create(ctx context.Context, in domain.CreateTranslationInput) (*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	in.Key = strings.TrimSpace(in.Key)
	in.Locale = strings.TrimSpace(in.Locale)
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	locale, err := s.repos.Locales.GetByCode(ctx, in.Locale)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("locale", "the selected locale is invalid")
		}
		return nil, fmt.Errorf("get locale %q: %w", in.Locale, err)
	}

	now := time.Now().UTC()
	t := &domain.Translation{
		Key:       in.Key,
		Content:   in.Content,
		LocaleID:  locale.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = s.tx.WithinTx(ctx, func(r domain.Repositories) error {
		if err := r.Translations.Create(ctx, t); err != nil {
			return err
		}
		if len(in.Tags) > 0 {
			if err := reconcileTags(ctx, r.Tags, t.ID, in.Tags); err != nil {
				return err
			}
		}
		return bumpVersion(ctx, r)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create translation: %w", err)
	}
	s.logger.DebugContext(ctx, "translation created", "id", t.ID, "key", t.Key, "locale", locale.Code)
	return s.repos.Translations.GetByID(ctx, t.ID)
}

func (s *translationService) Update(ctx context.Context, id int64, in domain.UpdateTranslationInput) (*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if in.Content != nil && *in.Content == "" {
		return nil, domain.NewValidationError("content", "the content field is required")
	}
	if in.Tags != nil {
		if err := validateTagNames(*in.Tags); err != nil {
			return nil, err
		}
	}

	err := s.tx.WithinTx(ctx, func(r domain.Repositories) error {
		if err := r.Translations.UpdateContent(ctx, id, in.Content); err != nil {
			return err
		}
		if in.Tags != nil {
			if err := reconcileTags(ctx, r.Tags, id, *in.Tags); err != nil {
				return err
			}
		}
		return bumpVersion(ctx, r)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update translation %d: %w", id, err)
	}
	return s.repos.Translations.GetByID(ctx, id)
}

func (s *translationService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := s.tx.WithinTx(ctx, func(r domain.Repositories) error {
		if err := r.Translations.Delete(ctx, id); err != nil {
			return err
		}
		return bumpVersion(ctx, r)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete translation %d: %w", id, err)
	}
	return nil
}

func bumpVersion(ctx context.Context, r domain.Repositories) error {
	if _, err := r.CacheVersions.Bump(ctx, domain.TranslationsCacheVersionKey); err != nil {
		return fmt.Errorf("bump cache version: %w", err)
	}
	return nil
}

func validateCreate(in domain.CreateTranslationInput) error {
	fields := map[string]string{}
	switch {
	case in.Key == "":
		fields["key"] = "the key field is required"
	case utf8.RuneCountInString(in.Key) > domain.MaxTranslationKeyLength:
		fields["key"] = fmt.Sprintf("the key may not be greater than %d characters", domain.MaxTranslationKeyLength)
	}
	if in.Content == "" {
		fields["content"] = "the content field is required"
	}
	if in.Locale == "" {
		fields["locale"] = "the locale field is required"
	}
	if err := validateTagNames(in.Tags); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for k, v := range verr.Fields {
				fields[k] = v
			}
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
