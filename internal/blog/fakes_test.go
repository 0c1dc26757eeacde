package blog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ykadvisory/blog-portal/internal/cache"
	"github.com/ykadvisory/blog-portal/internal/translations"
	"github.com/ykadvisory/blog-portal/internal/wordpress"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeContent serves an in-memory corpus through the ContentSource contract.
type fakeContent struct {
	posts []wordpress.Post

	allCalls    int
	searchCalls int
	// searchPageSizes records the perPage of every Search call.
	searchPageSizes []int

	failAll bool
}

func (f *fakeContent) AllPosts(_ context.Context) ([]wordpress.Post, error) {
	f.allCalls++
	if f.failAll {
		return nil, wordpress.ErrSourceUnavailable
	}
	return f.posts, nil
}

func (f *fakeContent) PostsByPage(_ context.Context, page, perPage int) ([]wordpress.Post, error) {
	if page < 1 || perPage < 1 {
		return nil, fmt.Errorf("page and perPage must be greater than 0: page=%d, perPage=%d", page, perPage)
	}

	start := (page - 1) * perPage
	if start > len(f.posts) {
		start = len(f.posts)
	}
	end := start + perPage
	if end > len(f.posts) {
		end = len(f.posts)
	}

	return f.posts[start:end], nil
}

func (f *fakeContent) TotalPages(_ context.Context, perPage int) (int, error) {
	total := (len(f.posts) + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}
	return total, nil
}

func (f *fakeContent) PostBySlug(_ context.Context, slug string) (*wordpress.Post, error) {
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			return &f.posts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeContent) Search(_ context.Context, query string, page, perPage int, tags []string) ([]wordpress.Post, int, error) {
	f.searchCalls++
	f.searchPageSizes = append(f.searchPageSizes, perPage)

	var matches []wordpress.Post
	for i := range f.posts {
		if query == "" || strings.Contains(strings.ToLower(f.posts[i].Title.Rendered), strings.ToLower(query)) {
			matches = append(matches, f.posts[i])
		}
	}

	total := (len(matches) + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}

	if len(tags) > 0 {
		wanted := make(map[string]struct{}, len(tags))
		for _, tag := range tags {
			wanted[strings.ToLower(tag)] = struct{}{}
		}
		var filtered []wordpress.Post
		for i := range matches {
			for _, name := range matches[i].CategoryNames() {
				if _, ok := wanted[strings.ToLower(name)]; ok {
					filtered = append(filtered, matches[i])
					break
				}
			}
		}
		matches = filtered
	}

	return matches, total, nil
}

type fakeTranslations struct {
	docs []translations.Post
}

func (f *fakeTranslations) PostBySlug(_ context.Context, slug string) (*translations.Post, error) {
	for i := range f.docs {
		if strings.EqualFold(f.docs[i].Slug, slug) {
			return &f.docs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTranslations) AllPosts(_ context.Context) ([]translations.Post, error) {
	var complete []translations.Post
	for _, doc := range f.docs {
		if doc.Title != "" {
			complete = append(complete, doc)
		}
	}
	return complete, nil
}

func wpPost(id int, slug, title, category string) wordpress.Post {
	post := wordpress.Post{
		ID:      id,
		Slug:    slug,
		Date:    "2024-01-14T12:00:00",
		Title:   wordpress.Rendered{Rendered: title},
		Excerpt: wordpress.Rendered{Rendered: "<p>excerpt</p>"},
		Content: wordpress.Rendered{Rendered: "<p>content</p>"},
	}
	if category != "" {
		post.Embedded = &wordpress.Embedded{Terms: [][]wordpress.Term{{
			{ID: 100 + id, Name: category, Taxonomy: "category"},
		}}}
	}
	return post
}

func newTestManager(content *fakeContent, trans *fakeTranslations, opts ...Option) *Manager {
	return NewManager(content, trans, cache.NewMemory(), testLogger(), opts...)
}
