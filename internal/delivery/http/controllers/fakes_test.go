package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"translationhub/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeTranslationService implements domain.TranslationService for handler tests.
type fakeTranslationService struct {
	page        *domain.TranslationPage
	translation *domain.Translation
	err         error

	lastPage     int
	lastCriteria domain.SearchCriteria
	lastID       int64
	lastCreate   domain.CreateTranslationInput
	lastUpdate   domain.UpdateTranslationInput
	deleted      []int64
}

func (f *fakeTranslationService) List(_ context.Context, page int) (*domain.TranslationPage, error) {
	f.lastPage = page
	return f.page, f.err
}

func (f *fakeTranslationService) Search(_ context.Context, c domain.SearchCriteria, page int) (*domain.TranslationPage, error) {
	f.lastCriteria, f.lastPage = c, page
	return f.page, f.err
}

func (f *fakeTranslationService) Get(_ context.Context, id int64) (*domain.Translation, error) {
	f.lastID = id
	return f.translation, f.err
}

func (f *fakeTranslationService) Create(_ context.Context, in domain.CreateTranslationInput) (*domain.Translation, error) {
	f.lastCreate = in
	return f.translation, f.err
}

func (f *fakeTranslationService) Update(_ context.Context, id int64, in domain.UpdateTranslationInput) (*domain.Translation, error) {
	f.lastID, f.lastUpdate = id, in
	return f.translation, f.err
}

func (f *fakeTranslationService) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token string
	err   error

	lastEmail, lastPassword, lastDevice string
	loggedOut                           []string
}

func (f *fakeAuthService) Verify(_ context.Context, _ string) (*domain.Principal, error) {
	return nil, domain.ErrUnauthorized
}

func (f *fakeAuthService) IssueToken(_ context.Context, email, password, deviceName string) (string, error) {
	f.lastEmail, f.lastPassword, f.lastDevice = email, password, deviceName
	return f.token, f.err
}

func (f *fakeAuthService) Logout(_ context.Context, tokenID string) error {
	if f.err != nil {
		return f.err
	}
	f.loggedOut = append(f.loggedOut, tokenID)
	return nil
}

// fakeExportService implements domain.ExportService for handler tests.
type fakeExportService struct {
	body []byte
	err  error

	lastLocale, lastTag string
}

func (f *fakeExportService) Export(_ context.Context, locale, tag string) ([]byte, error) {
	f.lastLocale, f.lastTag = locale, tag
	return f.body, f.err
}

type fakeLocaleService struct {
	locales []*domain.Locale
	err     error
}

func (f *fakeLocaleService) List(_ context.Context) ([]*domain.Locale, error) {
	return f.locales, f.err
}

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(_ context.Context) error { return f.err }

func sampleTranslation() *domain.Translation {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &domain.Translation{
		ID:        1,
		Key:       "auth.login",
		Content:   "Log in",
		LocaleID:  1,
		Locale:    &domain.Locale{ID: 1, Code: "en", Name: "English"},
		Tags:      []*domain.Tag{{ID: 1, Name: "web"}},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}
