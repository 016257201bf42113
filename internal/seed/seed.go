// Package seed loads reference data and bulk fake translations into the store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"translationhub/internal/domain"
)

// DefaultChunkSize is the number of translations written per bulk insert.
const DefaultChunkSize = 1000

// DefaultLocales are created by SeedLocales.
var DefaultLocales = []domain.Locale{
	{Code: "en", Name: "English"},
	{Code: "fr", Name: "French"},
	{Code: "es", Name: "Spanish"},
}

// DefaultTags are created by SeedTags.
var DefaultTags = []string{"web", "mobile", "desktop"}

// UserRegistrar creates API users.
type UserRegistrar interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
}

// Config bundles the dependencies of a Seeder. Users may be nil when no admin is seeded.
type Config struct {
	Repos     domain.Repositories
	Bulk      domain.BulkTranslationWriter
	Users     UserRegistrar
	ChunkSize int
	Rand      *rand.Rand
}

// Seeder writes seed data.
type Seeder struct {
	repos     domain.Repositories
	bulk      domain.BulkTranslationWriter
	users     UserRegistrar
	chunkSize int
	rand      *rand.Rand
	logger    *slog.Logger
	runID     string
}

// New returns a Seeder. Zero ChunkSize and nil Rand get defaults.
func New(cfg Config, logger *slog.Logger) *Seeder {
	r := cfg.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	chunk := cfg.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	return &Seeder{
		repos:     cfg.Repos,
		bulk:      cfg.Bulk,
		users:     cfg.Users,
		chunkSize: chunk,
		rand:      r,
		logger:    logger,
		runID:     strconv.FormatUint(r.Uint64()%(1<<40), 36),
	}
}

// TranslationPlan describes a bulk load.
type TranslationPlan struct {
	Count int
	// LocaleIDs are picked at random per translation.
	LocaleIDs []int64
	// TagIDs are sampled without replacement, between MinTags and MaxTags per translation.
	TagIDs  []int64
	MinTags int
	MaxTags int
}

// AdminUser is the API user created by SeedAdmin.
type AdminUser struct {
	Email    string
	Password string
	Name     string
}

// Summary reports what Run wrote.
type Summary struct {
	Locales      int
	Tags         int
	Translations int
	AdminCreated bool
}

// Run seeds locales, tags, count translations with one or two tags each, and the admin user.
func (s *Seeder) Run(ctx context.Context, count int, admin AdminUser) (*Summary, error) {
	locales, err := s.SeedLocales(ctx)
	if err != nil {
		return nil, err
	}
	tagIDs, err := s.SeedTags(ctx, DefaultTags...)
	if err != nil {
		return nil, err
	}
	localeIDs := make([]int64, len(locales))
	for i, l := range locales {
		localeIDs[i] = l.ID
	}
	inserted, err := s.SeedTranslations(ctx, TranslationPlan{
		Count:     count,
		LocaleIDs: localeIDs,
		TagIDs:    tagIDs,
		MinTags:   1,
		MaxTags:   2,
	})
	if err != nil {
		return nil, err
	}
	created, err := s.SeedAdmin(ctx, admin)
	if err != nil {
		return nil, err
	}
	return &Summary{Locales: len(locales), Tags: len(tagIDs), Translations: inserted, AdminCreated: created}, nil
}

// SeedLocales creates DefaultLocales that do not exist yet and returns all of them.
func (s *Seeder) SeedLocales(ctx context.Context) ([]*domain.Locale, error) {
	out := make([]*domain.Locale, 0, len(DefaultLocales))
	for _, l := range DefaultLocales {
		locale, err := s.repos.Locales.Ensure(ctx, l.Code, l.Name)
		if err != nil {
			return nil, fmt.Errorf("seed locale %q: %w", l.Code, err)
		}
		out = append(out, locale)
	}
	return out, nil
}

// SeedTags creates the named tags that do not exist yet and returns their ids in the given order.
func (s *Seeder) SeedTags(ctx context.Context, names ...string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := s.repos.Tags.UpsertByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("seed tag %q: %w", name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SeedTranslations writes plan.Count fake translations in chunks and tags them.
// It returns the number of rows inserted and bumps the export cache version when any were.
func (s *Seeder) SeedTranslations(ctx context.Context, plan TranslationPlan) (int, error) {
	if plan.Count <= 0 {
		return 0, nil
	}
	if len(plan.LocaleIDs) == 0 {
		return 0, errors.New("seed translations: no locales")
	}
	if plan.MinTags < 0 || plan.MaxTags < plan.MinTags || plan.MaxTags > len(plan.TagIDs) {
		return 0, fmt.Errorf("seed translations: invalid tag range %d..%d for %d tags", plan.MinTags, plan.MaxTags, len(plan.TagIDs))
	}

	inserted := 0
	for start := 0; start < plan.Count; start += s.chunkSize {
		n := min(s.chunkSize, plan.Count-start)
		rows := make([]domain.NewTranslationRow, n)
		for i := range rows {
			rows[i] = domain.NewTranslationRow{
				Key:      s.fakeKey(start + i),
				Content:  s.fakeSentence(),
				LocaleID: plan.LocaleIDs[s.rand.IntN(len(plan.LocaleIDs))],
			}
		}
		ids, err := s.bulk.InsertTranslations(ctx, rows)
		if err != nil {
			return inserted, fmt.Errorf("seed translations chunk at %d: %w", start, err)
		}
		if err := s.bulk.AttachTags(ctx, s.tagLinks(ids, plan)); err != nil {
			return inserted, fmt.Errorf("tag translations chunk at %d: %w", start, err)
		}
		inserted += len(ids)
		s.logger.DebugContext(ctx, "seeded translation chunk", "offset", start, "inserted", len(ids))
	}

	if inserted > 0 {
		if _, err := s.repos.CacheVersions.Bump(ctx, domain.TranslationsCacheVersionKey); err != nil {
			return inserted, fmt.Errorf("bump cache version: %w", err)
		}
	}
	s.logger.InfoContext(ctx, "seeded translations", "requested", plan.Count, "inserted", inserted)
	return inserted, nil
}

// SeedAdmin creates the admin user. It reports false when no password is configured
// or the user already exists.
func (s *Seeder) SeedAdmin(ctx context.Context, admin AdminUser) (bool, error) {
	if s.users == nil || admin.Email == "" || admin.Password == "" {
		s.logger.WarnContext(ctx, "admin user not seeded: ADMIN_EMAIL and ADMIN_PASSWORD are required")
		return false, nil
	}
	if _, err := s.users.Register(ctx, admin.Email, admin.Name, admin.Password); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.logger.InfoContext(ctx, "admin user already exists", "email", admin.Email)
			return false, nil
		}
		return false, fmt.Errorf("seed admin user: %w", err)
	}
	s.logger.InfoContext(ctx, "admin user created", "email", admin.Email)
	return true, nil
}

func (s *Seeder) tagLinks(ids []int64, plan TranslationPlan) []domain.TranslationTagLink {
	links := make([]domain.TranslationTagLink, 0, len(ids)*plan.MaxTags)
	for _, id := range ids {
		n := plan.MinTags
		if plan.MaxTags > plan.MinTags {
			n += s.rand.IntN(plan.MaxTags - plan.MinTags + 1)
		}
		for _, idx := range s.rand.Perm(len(plan.TagIDs))[:n] {
			links = append(links, domain.TranslationTagLink{TranslationID: id, TagID: plan.TagIDs[idx]})
		}
	}
	return links
}

var words = []string{
	"account", "action", "alert", "app", "button", "cancel", "cart", "change", "checkout", "close",
	"confirm", "continue", "dashboard", "delete", "details", "edit", "email", "error", "field", "filter",
	"form", "help", "home", "invoice", "item", "label", "language", "list", "login", "logout",
	"menu", "message", "notice", "order", "page", "password", "payment", "profile", "save", "search",
	"settings", "share", "sign", "status", "submit", "success", "title", "update", "upload", "welcome",
}

func (s *Seeder) word() string {
	return words[s.rand.IntN(len(words))]
}

// fakeKey is unique within a run, so keys from one run never collide with each other.
func (s *Seeder) fakeKey(seq int) string {
	return fmt.Sprintf("app.%s-%s-%s.%s%s", s.word(), s.word(), s.word(), s.runID, strconv.FormatInt(int64(seq), 36))
}

func (s *Seeder) fakeSentence() string {
	n := 4 + s.rand.IntN(7)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = s.word()
	}
	sentence := strings.Join(parts, " ")
	return strings.ToUpper(sentence[:1]) + sentence[1:] + "."
}
