package blog

import (
	"context"
	"fmt"
)

// widePageSize is used whenever tag filtering is active: the source filters
// tags after the fetch, so a small page could under-return matches.
const widePageSize = 100

// Search composes a free-text query and a tag set into one filtered page.
// With no active filter it passes the server-side page through untouched.
func (m *Manager) Search(ctx context.Context, query string, tags []string, page, perPage int) (*SearchResult, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be greater than 0: page=%d", page)
	}
	if perPage < 1 {
		perPage = DefaultPageSize
	}

	if query == "" && len(tags) == 0 {
		posts, err := m.PostsByPage(ctx, page, perPage)
		if err != nil {
			return nil, err
		}

		total, err := m.TotalPages(ctx, perPage)
		if err != nil {
			return nil, err
		}

		return &SearchResult{Posts: posts, TotalPages: total}, nil
	}

	effective := perPage
	if len(tags) > 0 {
		effective = widePageSize
	}

	wpPosts, total, err := m.content.Search(ctx, query, page, effective, tags)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	if total < 1 {
		total = 1
	}

	return &SearchResult{Posts: NewPosts(wpPosts), TotalPages: total}, nil
}
