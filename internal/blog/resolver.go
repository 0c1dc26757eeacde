package blog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ykadvisory/blog-portal/internal/translations"
	"github.com/ykadvisory/blog-portal/internal/wordpress"
)

const (
	maxRelatedPosts = 3
	wordsPerMinute  = 200
)

var markupPattern = regexp.MustCompile(`<[^>]+>`)

// ReadingTime estimates minutes to read an HTML fragment: markup stripped,
// whitespace-separated words counted, 200 words per minute, rounded up,
// never below 1.
func ReadingTime(fragment string) int {
	text := markupPattern.ReplaceAllString(fragment, "")
	words := len(strings.Fields(text))

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return minutes
}

// Resolve selects the renderable variant of the post with the given slug for
// the given language preference. The English and Korean lookups are
// independent and run concurrently; both complete before selection.
//
// Returns (nil, nil) when no variant is renderable: the caller answers with
// a not-found response.
func (m *Manager) Resolve(ctx context.Context, slug string, lang Language) (*ResolvedPost, error) {
	var (
		primary    *wordpress.Post
		translated *translations.Post
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		post, err := m.content.PostBySlug(gctx, slug)
		if err != nil {
			return fmt.Errorf("fetch primary post: %w", err)
		}
		primary = post
		return nil
	})
	g.Go(func() error {
		post, err := m.translations.PostBySlug(gctx, slug)
		if err != nil {
			return fmt.Errorf("fetch translated post: %w", err)
		}
		translated = post
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	switch {
	case lang == LanguageKorean && translated != nil:
		return m.resolveTranslated(ctx, translated, primary)
	case lang == LanguageKorean && !m.fallbackToPrimary:
		// Strict mode: a Korean request without a stored translation is not
		// found, even when the English post exists.
		return nil, nil
	case primary != nil:
		return m.resolvePrimary(ctx, primary)
	default:
		return nil, nil
	}
}

func (m *Manager) resolvePrimary(ctx context.Context, wpPost *wordpress.Post) (*ResolvedPost, error) {
	post := NewPost(wpPost)

	related, err := m.relatedPrimary(ctx, post)
	if err != nil {
		return nil, err
	}

	return &ResolvedPost{
		Language:      LanguageEnglish,
		Slug:          post.Slug,
		Date:          post.Date,
		Title:         post.Title,
		Excerpt:       post.Excerpt,
		Content:       post.Content,
		FeaturedImage: post.FeaturedImage,
		Categories:    post.Categories,
		ReadingTime:   ReadingTime(post.Content),
		Related:       related,
	}, nil
}

func (m *Manager) resolveTranslated(ctx context.Context, doc *translations.Post, wpPrimary *wordpress.Post) (*ResolvedPost, error) {
	translated := NewTranslatedPost(doc)

	related, err := m.relatedTranslated(ctx, translated.WordpressID)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedPost{
		Language:    LanguageKorean,
		Slug:        translated.Slug,
		Date:        translated.Date,
		Title:       translated.Title,
		Excerpt:     translated.Excerpt,
		Content:     translated.Content,
		ReadingTime: ReadingTime(translated.Content),
		Related:     related,
	}

	// Taxonomy and the featured image live only on the English side.
	if wpPrimary != nil {
		primary := NewPost(wpPrimary)
		resolved.Categories = primary.Categories
		resolved.FeaturedImage = primary.FeaturedImage
	}

	return resolved, nil
}

// relatedPrimary picks up to three other posts sharing a decoded category
// name with the current one, in corpus order.
func (m *Manager) relatedPrimary(ctx context.Context, current Post) ([]RelatedPost, error) {
	corpus, err := m.AllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch corpus for related posts: %w", err)
	}

	names := make(map[string]struct{}, len(current.Categories))
	for _, c := range current.Categories {
		names[c.Name] = struct{}{}
	}

	var related []RelatedPost
	for i := range corpus {
		if corpus[i].ID == current.ID {
			continue
		}
		if !sharesCategory(&corpus[i], names) {
			continue
		}

		related = append(related, RelatedPost{
			Slug:          corpus[i].Slug,
			Date:          corpus[i].Date,
			Title:         corpus[i].Title,
			Excerpt:       corpus[i].Excerpt,
			FeaturedImage: corpus[i].FeaturedImage,
		})
		if len(related) == maxRelatedPosts {
			break
		}
	}

	return related, nil
}

// relatedTranslated degrades to "any other completed translation" because
// translations carry no taxonomy; self is excluded by back-reference id.
func (m *Manager) relatedTranslated(ctx context.Context, wordpressID int) ([]RelatedPost, error) {
	docs, err := m.translations.AllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch translations for related posts: %w", err)
	}

	var related []RelatedPost
	for i := range docs {
		if docs[i].WordpressID == wordpressID {
			continue
		}

		related = append(related, RelatedPost{
			Slug:    docs[i].Slug,
			Date:    docs[i].Date,
			Title:   docs[i].Title,
			Excerpt: docs[i].Excerpt,
		})
		if len(related) == maxRelatedPosts {
			break
		}
	}

	return related, nil
}

func sharesCategory(post *Post, names map[string]struct{}) bool {
	for _, c := range post.Categories {
		if _, ok := names[c.Name]; ok {
			return true
		}
	}
	return false
}
