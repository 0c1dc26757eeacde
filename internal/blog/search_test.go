package blog

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykadvisory/blog-portal/internal/wordpress"
)

func TestManager_Search(t *testing.T) {
	ctx := context.Background()

	content := &fakeContent{posts: []wordpress.Post{
		wpPost(1, "exit-basics", "Exit Basics", "Exit Planning"),
		wpPost(2, "exit-timing", "Exit Timing", "Exit Planning"),
		wpPost(3, "valuation-101", "Valuation 101", "Valuation"),
	}}
	manager := newTestManager(content, &fakeTranslations{})

	t.Run("NoFilterPassesPageThrough", func(t *testing.T) {
		result, err := manager.Search(ctx, "", nil, 1, 2)
		require.NoError(t, err)

		assert.Len(t, result.Posts, 2)
		assert.Equal(t, 2, result.TotalPages)
		assert.Zero(t, content.searchCalls, "no search request without an active filter")
	})

	t.Run("FreeTextDelegatesToSearchEndpoint", func(t *testing.T) {
		result, err := manager.Search(ctx, "exit", nil, 1, 9)
		require.NoError(t, err)

		assert.Len(t, result.Posts, 2)
		require.NotEmpty(t, content.searchPageSizes)
		assert.Equal(t, 9, content.searchPageSizes[len(content.searchPageSizes)-1])
	})

	t.Run("TagFilterWidensPageSize", func(t *testing.T) {
		result, err := manager.Search(ctx, "exit", []string{"exit planning"}, 1, 9)
		require.NoError(t, err)

		assert.Len(t, result.Posts, 2)
		assert.Equal(t, widePageSize, content.searchPageSizes[len(content.searchPageSizes)-1])
	})

	t.Run("RejectsInvalidPage", func(t *testing.T) {
		_, err := manager.Search(ctx, "exit", nil, 0, 9)
		require.Error(t, err)
	})
}

func TestDebouncer(t *testing.T) {
	ctx := context.Background()

	t.Run("CoalescesKeystrokesIntoOneRequest", func(t *testing.T) {
		var requests atomic.Int64
		var lastQuery atomic.Value

		search := func(_ context.Context, query string, _ []string, page, _ int) (*SearchResult, error) {
			requests.Add(1)
			lastQuery.Store(query)
			assert.Equal(t, 1, page, "query changes must reset to page 1")
			return &SearchResult{TotalPages: 1}, nil
		}

		d := NewDebouncer(ctx, search, 40*time.Millisecond)
		d.SetQuery("a")
		d.SetQuery("ab")
		d.SetQuery("abc")

		require.Eventually(t, func() bool {
			_, _, ok := d.Result()
			return ok
		}, time.Second, 5*time.Millisecond)

		assert.Equal(t, int64(1), requests.Load(), "keystrokes within the quiet period must coalesce")
		assert.Equal(t, "abc", lastQuery.Load())
	})

	t.Run("LoadingIsDistinctFromEmptyResult", func(t *testing.T) {
		release := make(chan struct{})
		search := func(_ context.Context, _ string, _ []string, _, _ int) (*SearchResult, error) {
			<-release
			return &SearchResult{TotalPages: 1}, nil
		}

		d := NewDebouncer(ctx, search, 10*time.Millisecond)
		assert.Equal(t, SearchIdle, d.State())

		d.SetQuery("exit")
		assert.True(t, d.Loading())

		_, _, ok := d.Result()
		assert.False(t, ok, "no result must be reported while loading")

		close(release)
		require.Eventually(t, func() bool {
			_, _, ok := d.Result()
			return ok
		}, time.Second, 5*time.Millisecond)
		assert.False(t, d.Loading())
	})

	t.Run("StaleResponseIsDiscarded", func(t *testing.T) {
		type call struct {
			query   string
			release chan struct{}
		}
		calls := make(chan call, 2)

		search := func(_ context.Context, query string, _ []string, _, _ int) (*SearchResult, error) {
			c := call{query: query, release: make(chan struct{})}
			calls <- c
			<-c.release
			return &SearchResult{Posts: nil, TotalPages: len(query)}, nil
		}

		d := NewDebouncer(ctx, search, 5*time.Millisecond)

		d.SetQuery("a")
		first := <-calls

		d.SetQuery("abc")
		second := <-calls

		// The newer request settles first.
		close(second.release)
		require.Eventually(t, func() bool {
			result, err, ok := d.Result()
			return ok && err == nil && result.TotalPages == 3
		}, time.Second, 5*time.Millisecond)

		// The stale response arrives afterwards and must be ignored.
		close(first.release)
		time.Sleep(30 * time.Millisecond)

		result, err, ok := d.Result()
		require.True(t, ok)
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalPages, "stale response for a superseded request must not overwrite the fresh one")
	})

	t.Run("TagTogglesFireImmediately", func(t *testing.T) {
		var requests atomic.Int64
		search := func(_ context.Context, _ string, tags []string, page, _ int) (*SearchResult, error) {
			requests.Add(1)
			assert.Equal(t, []string{"exit planning"}, tags)
			assert.Equal(t, 1, page)
			return &SearchResult{TotalPages: 1}, nil
		}

		d := NewDebouncer(ctx, search, time.Hour)
		d.SetTags([]string{"exit planning"})

		require.Eventually(t, func() bool {
			_, _, ok := d.Result()
			return ok
		}, time.Second, 5*time.Millisecond, "tag toggles must not wait for the debounce window")
		assert.Equal(t, int64(1), requests.Load())
	})
}
