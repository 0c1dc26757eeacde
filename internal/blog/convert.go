package blog

import (
	"time"

	"github.com/ykadvisory/blog-portal/internal/translations"
	"github.com/ykadvisory/blog-portal/internal/wordpress"
)

// WordPress reports dates without a zone offset.
const wordpressDateLayout = "2006-01-02T15:04:05"

func parseDate(value string) time.Time {
	if t, err := time.Parse(wordpressDateLayout, value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Time{}
}

func NewPost(p *wordpress.Post) Post {
	post := Post{
		ID:            p.ID,
		Slug:          p.Slug,
		Date:          parseDate(p.Date),
		Title:         p.Title.Rendered,
		Excerpt:       p.Excerpt.Rendered,
		Content:       p.Content.Rendered,
		FeaturedImage: p.FeaturedMedia,
	}

	terms := p.Categories()
	if len(terms) > 0 {
		post.Categories = make([]Category, len(terms))
		for i, term := range terms {
			post.Categories[i] = Category{ID: term.ID, Name: term.Name}
		}
	}

	return post
}

func NewPosts(list []wordpress.Post) []Post {
	result := make([]Post, len(list))
	for i := range list {
		result[i] = NewPost(&list[i])
	}
	return result
}

func NewTranslatedPost(t *translations.Post) TranslatedPost {
	return TranslatedPost{
		WordpressID: t.WordpressID,
		Slug:        t.Slug,
		Date:        t.Date,
		Title:       t.Title,
		Excerpt:     t.Excerpt,
		Content:     t.Content,
	}
}

func NewTranslatedPosts(list []translations.Post) []TranslatedPost {
	result := make([]TranslatedPost, len(list))
	for i := range list {
		result[i] = NewTranslatedPost(&list[i])
	}
	return result
}
