package services

import (
	"context"
	"fmt"
	"time"

	"translationhub/internal/domain"
)

type localeService struct {
	locales        domain.LocaleRepository
	contextTimeout time.Duration
}

func NewLocaleService(locales domain.LocaleRepository, timeout time.Duration) domain.LocaleService {
	return &localeService{locales: locales, contextTimeout: timeout}
}

func (s *localeService) List(ctx context.Context) ([]*domain.Locale, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	locales, err := s.locales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	return locales, nil
}
