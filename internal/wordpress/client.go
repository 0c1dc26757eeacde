package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// MaxPageSize is the largest per_page value the WordPress REST API accepts.
	MaxPageSize = 100

	totalPagesHeader = "X-WP-TotalPages"
)

// ErrSourceUnavailable is returned on any non-2xx response from the content
// API. Multi-page aggregation aborts on it rather than returning a
// truncated corpus.
var ErrSourceUnavailable = errors.New("content source unavailable")

// Client reads posts from a headless WordPress installation over its REST API.
// All operations are idempotent GETs; there are no retries.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// AllPosts fetches the complete corpus page by page, largest page size first
// to last. Fetches are strictly sequential: a page shorter than the requested
// size signals the end, so page N+1 is only requested once page N is known to
// be full.
func (c *Client) AllPosts(ctx context.Context) ([]Post, error) {
	var all []Post

	for page := 1; ; page++ {
		posts, _, err := c.postsPage(ctx, page, MaxPageSize, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		all = append(all, posts...)

		if len(posts) < MaxPageSize {
			break
		}
	}

	return all, nil
}

// PostsByPage fetches a single page. Pages are 1-indexed.
func (c *Client) PostsByPage(ctx context.Context, page, perPage int) ([]Post, error) {
	if page < 1 || perPage < 1 {
		return nil, fmt.Errorf("page and perPage must be greater than 0: page=%d, perPage=%d", page, perPage)
	}

	posts, _, err := c.postsPage(ctx, page, perPage, nil)
	return posts, err
}

// TotalPages reads the total-page count for the given page size from the
// response metadata of a page-1 request. A missing or non-numeric header is
// recovered locally by defaulting to 1, never propagated as an error.
func (c *Client) TotalPages(ctx context.Context, perPage int) (int, error) {
	_, total, err := c.postsPage(ctx, 1, perPage, nil)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// PostBySlug looks a post up by exact slug match. Zero matches yield
// (nil, nil), not an error.
func (c *Client) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	params := url.Values{}
	params.Set("slug", slug)

	posts, _, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}

	return &posts[0], nil
}

// Search delegates a free-text query to the API's search parameter. When tags
// is non-empty the returned page is additionally filtered by decoded category
// name, case-insensitively. The reported total-page count always reflects the
// unfiltered search result; callers widening perPage compensate for the
// post-fetch filtering.
func (c *Client) Search(ctx context.Context, query string, page, perPage int, tags []string) ([]Post, int, error) {
	if page < 1 || perPage < 1 {
		return nil, 0, fmt.Errorf("page and perPage must be greater than 0: page=%d, perPage=%d", page, perPage)
	}

	params := url.Values{}
	params.Set("search", query)

	posts, total, err := c.postsPage(ctx, page, perPage, params)
	if err != nil {
		return nil, 0, err
	}

	if len(tags) > 0 {
		posts = filterByCategoryNames(posts, tags)
	}

	return posts, total, nil
}

func (c *Client) postsPage(ctx context.Context, page, perPage int, extra url.Values) ([]Post, int, error) {
	params := url.Values{}
	for key, values := range extra {
		params[key] = values
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))

	return c.get(ctx, params)
}

func (c *Client) get(ctx context.Context, params url.Values) ([]Post, int, error) {
	params.Set("_embed", "")

	requestURL := c.baseURL + "/posts?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, 0, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, 0, fmt.Errorf("decode posts: %w", err)
	}

	return posts, totalPages(resp.Header, c.log), nil
}

func totalPages(header http.Header, log *slog.Logger) int {
	value := header.Get(totalPagesHeader)
	if value == "" {
		return 1
	}

	total, err := strconv.Atoi(value)
	if err != nil || total < 1 {
		log.Warn("malformed total pages header", "value", value)
		return 1
	}

	return total
}

func filterByCategoryNames(posts []Post, tags []string) []Post {
	wanted := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		wanted[strings.ToLower(tag)] = struct{}{}
	}

	var filtered []Post
	for i := range posts {
		for _, name := range posts[i].CategoryNames() {
			if _, ok := wanted[strings.ToLower(name)]; ok {
				filtered = append(filtered, posts[i])
				break
			}
		}
	}

	return filtered
}
