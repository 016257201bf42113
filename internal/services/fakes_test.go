package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"translationhub/internal/domain"
)

// testLogger is a no-op logger so tests don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// memStore is an in-memory implementation of the repositories and domain.Transactor.
// WithinTx snapshots state and restores it when fn fails.
type memStore struct {
	mu                sync.Mutex
	locales           map[string]*domain.Locale
	translations      map[int64]domain.Translation
	nextTranslationID int64
	tags              map[string]int64
	nextTagID         int64
	links             map[int64][]int64
	version           int64
	versionReadErr    error
	bumpErr           error
	exportErr         error
	exportCalls       int
	commits           int
	rollbacks         int
}

func newMemStore() *memStore {
	return &memStore{
		locales: map[string]*domain.Locale{
			"en": {ID: 1, Code: "en", Name: "English"},
			"fr": {ID: 2, Code: "fr", Name: "French"},
		},
		translations: make(map[int64]domain.Translation),
		tags:         make(map[string]int64),
		links:        make(map[int64][]int64),
	}
}

func (m *memStore) repos() domain.Repositories {
	return domain.Repositories{
		Translations:  memTranslations{m},
		Tags:          memTags{m},
		Locales:       memLocales{m},
		CacheVersions: memVersions{m},
	}
}

type memSnapshot struct {
	translations      map[int64]domain.Translation
	nextTranslationID int64
	tags              map[string]int64
	nextTagID         int64
	links             map[int64][]int64
	version           int64
}

func (m *memStore) snapshot() memSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := memSnapshot{
		translations:      make(map[int64]domain.Translation, len(m.translations)),
		nextTranslationID: m.nextTranslationID,
		tags:              make(map[string]int64, len(m.tags)),
		nextTagID:         m.nextTagID,
		links:             make(map[int64][]int64, len(m.links)),
		version:           m.version,
	}
	for k, v := range m.translations {
		s.translations[k] = v
	}
	for k, v := range m.tags {
		s.tags[k] = v
	}
	for k, v := range m.links {
		s.links[k] = append([]int64(nil), v...)
	}
	return s
}

func (m *memStore) restore(s memSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.translations = s.translations
	m.nextTranslationID = s.nextTranslationID
	m.tags = s.tags
	m.nextTagID = s.nextTagID
	m.links = s.links
	m.version = s.version
}

func (m *memStore) WithinTx(ctx context.Context, fn func(repos domain.Repositories) error) error {
	snap := m.snapshot()
	if err := fn(m.repos()); err != nil {
		m.restore(snap)
		m.mu.Lock()
		m.rollbacks++
		m.mu.Unlock()
		return err
	}
	m.mu.Lock()
	m.commits++
	m.mu.Unlock()
	return nil
}

func (m *memStore) currentVersion() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.version == 0 {
		return 1
	}
	return m.version
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.translations)
}

func (m *memStore) localeByID(id int64) *domain.Locale {
	for _, l := range m.locales {
		if l.ID == id {
			cp := *l
			return &cp
		}
	}
	return nil
}

func (m *memStore) tagsOf(translationID int64) []*domain.Tag {
	out := []*domain.Tag{}
	for _, tagID := range m.links[translationID] {
		for name, id := range m.tags {
			if id == tagID {
				out = append(out, &domain.Tag{ID: id, Name: name})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// matching returns translations satisfying c ordered by id. Caller holds mu.
func (m *memStore) matching(c domain.SearchCriteria) []domain.Translation {
	var out []domain.Translation
	for _, t := range m.translations {
		if c.Key != "" && !strings.Contains(t.Key, c.Key) {
			continue
		}
		if c.Content != "" && !strings.Contains(t.Content, c.Content) {
			continue
		}
		if c.Locale != "" {
			l := m.localeByID(t.LocaleID)
			if l == nil || l.Code != c.Locale {
				continue
			}
		}
		if c.Tag != "" {
			found := false
			for _, tag := range m.tagsOf(t.ID) {
				if tag.Name == c.Tag {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type memTranslations struct{ m *memStore }

func (r memTranslations) Create(ctx context.Context, t *domain.Translation) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, existing := range r.m.translations {
		if existing.LocaleID == t.LocaleID && existing.Key == t.Key {
			return domain.ErrConflict
		}
	}
	r.m.nextTranslationID++
	t.ID = r.m.nextTranslationID
	r.m.translations[t.ID] = *t
	return nil
}

func (r memTranslations) GetByID(ctx context.Context, id int64) (*domain.Translation, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.translations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t.Locale = r.m.localeByID(t.LocaleID)
	t.Tags = r.m.tagsOf(id)
	return &t, nil
}

func (r memTranslations) UpdateContent(ctx context.Context, id int64, content *string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.translations[id]
	if !ok {
		return domain.ErrNotFound
	}
	if content != nil {
		t.Content = *content
	}
	t.UpdatedAt = time.Now().UTC()
	r.m.translations[id] = t
	return nil
}

func (r memTranslations) Delete(ctx context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.translations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m.translations, id)
	delete(r.m.links, id)
	return nil
}

func (r memTranslations) Search(ctx context.Context, c domain.SearchCriteria, p domain.PaginationParams) ([]*domain.Translation, int, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	all := r.m.matching(c)
	items := []*domain.Translation{}
	for i := p.Offset(); i < len(all) && len(items) < p.PageSize; i++ {
		t := all[i]
		t.Locale = r.m.localeByID(t.LocaleID)
		t.Tags = r.m.tagsOf(t.ID)
		items = append(items, &t)
	}
	return items, len(all), nil
}

func (r memTranslations) ExportRows(ctx context.Context, c domain.SearchCriteria) ([]domain.ExportRow, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.exportCalls++
	if r.m.exportErr != nil {
		return nil, r.m.exportErr
	}
	var out []domain.ExportRow
	for _, t := range r.m.matching(c) {
		out = append(out, domain.ExportRow{ID: t.ID, Key: t.Key, Content: t.Content})
	}
	return out, nil
}

type memTags struct{ m *memStore }

func (r memTags) UpsertByName(ctx context.Context, name string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if id, ok := r.m.tags[name]; ok {
		return id, nil
	}
	r.m.nextTagID++
	r.m.tags[name] = r.m.nextTagID
	return r.m.nextTagID, nil
}

func (r memTags) ReplaceTranslationTags(ctx context.Context, translationID int64, tagIDs []int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.links[translationID] = append([]int64(nil), tagIDs...)
	return nil
}

type memLocales struct{ m *memStore }

func (r memLocales) GetByCode(ctx context.Context, code string) (*domain.Locale, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	l, ok := r.m.locales[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r memLocales) List(ctx context.Context) ([]*domain.Locale, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*domain.Locale, 0, len(r.m.locales))
	for _, l := range r.m.locales {
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r memLocales) Ensure(ctx context.Context, code, name string) (*domain.Locale, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if l, ok := r.m.locales[code]; ok {
		return l, nil
	}
	l := &domain.Locale{ID: int64(len(r.m.locales) + 1), Code: code, Name: name}
	r.m.locales[code] = l
	return l, nil
}

type memVersions struct{ m *memStore }

func (r memVersions) Current(ctx context.Context, key string) (int64, error) {
	if r.m.versionReadErr != nil {
		return 0, r.m.versionReadErr
	}
	return r.m.currentVersion(), nil
}

func (r memVersions) Bump(ctx context.Context, key string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.bumpErr != nil {
		return 0, r.m.bumpErr
	}
	if r.m.version == 0 {
		r.m.version = 1
	}
	r.m.version++
	return r.m.version, nil
}

var errStore = errors.New("store unavailable")
