package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ykadvisory/blog-portal/internal/cache"
	"github.com/ykadvisory/blog-portal/internal/translations"
	"github.com/ykadvisory/blog-portal/internal/wordpress"
)

const (
	// DefaultPageSize matches the site's listing grid.
	DefaultPageSize = 9

	corpusCacheKey = "blog:posts:all"
)

// ContentSource is the English content API.
type ContentSource interface {
	AllPosts(ctx context.Context) ([]wordpress.Post, error)
	PostsByPage(ctx context.Context, page, perPage int) ([]wordpress.Post, error)
	TotalPages(ctx context.Context, perPage int) (int, error)
	PostBySlug(ctx context.Context, slug string) (*wordpress.Post, error)
	Search(ctx context.Context, query string, page, perPage int, tags []string) ([]wordpress.Post, int, error)
}

// TranslationSource is the Korean translation store.
type TranslationSource interface {
	PostBySlug(ctx context.Context, slug string) (*translations.Post, error)
	AllPosts(ctx context.Context) ([]translations.Post, error)
}

// Manager is the single authority for reading posts: paginated listings,
// the complete corpus, bilingual resolution and search.
type Manager struct {
	content      ContentSource
	translations TranslationSource
	cache        cache.Cache
	log          *slog.Logger

	revalidate        time.Duration
	fallbackToPrimary bool
}

type Option func(*Manager)

// WithFallbackToPrimary serves English content for Korean requests with no
// stored translation. The default is strict: such requests resolve to not
// found.
func WithFallbackToPrimary() Option {
	return func(m *Manager) { m.fallbackToPrimary = true }
}

// WithRevalidate overrides how long the cached corpus stays valid.
func WithRevalidate(d time.Duration) Option {
	return func(m *Manager) { m.revalidate = d }
}

func NewManager(content ContentSource, trans TranslationSource, c cache.Cache, log *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		content:      content,
		translations: trans,
		cache:        c,
		log:          log,
		revalidate:   time.Minute,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// AllPosts returns the complete English corpus, revalidated at most once per
// revalidation window. Cache failures are logged and fall through to the
// source; they never fail a read.
func (m *Manager) AllPosts(ctx context.Context) ([]Post, error) {
	if cached, ok := m.cachedCorpus(ctx); ok {
		return cached, nil
	}

	wpPosts, err := m.content.AllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch all posts: %w", err)
	}

	posts := NewPosts(wpPosts)
	m.storeCorpus(ctx, posts)

	return posts, nil
}

func (m *Manager) cachedCorpus(ctx context.Context) ([]Post, bool) {
	data, ok, err := m.cache.Get(ctx, corpusCacheKey)
	if err != nil {
		m.log.Warn("corpus cache read failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		m.log.Warn("corpus cache entry malformed", "error", err)
		return nil, false
	}

	return posts, true
}

func (m *Manager) storeCorpus(ctx context.Context, posts []Post) {
	data, err := json.Marshal(posts)
	if err != nil {
		m.log.Warn("corpus cache encode failed", "error", err)
		return
	}
	if err := m.cache.Set(ctx, corpusCacheKey, data, m.revalidate); err != nil {
		m.log.Warn("corpus cache write failed", "error", err)
	}
}

// PostsByPage returns one 1-indexed page of the English listing.
func (m *Manager) PostsByPage(ctx context.Context, page, perPage int) ([]Post, error) {
	wpPosts, err := m.content.PostsByPage(ctx, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("fetch posts page: %w", err)
	}

	return NewPosts(wpPosts), nil
}

// TotalPages reports the page count for navigation links. It is fetched
// independently of PostsByPage and may transiently disagree with it; the
// blog is read-only and public, so that is acceptable. Never less than 1.
func (m *Manager) TotalPages(ctx context.Context, perPage int) (int, error) {
	total, err := m.content.TotalPages(ctx, perPage)
	if err != nil {
		return 0, fmt.Errorf("fetch total pages: %w", err)
	}
	if total < 1 {
		total = 1
	}

	return total, nil
}
