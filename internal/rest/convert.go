package rest

import "github.com/ykadvisory/blog-portal/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c blog.Category) Category {
	return Category{
		ID:   c.ID,
		Name: c.Name,
	}
}

func NewPostSummary(p blog.Post) PostSummary {
	return PostSummary{
		ID:            p.ID,
		Slug:          p.Slug,
		Date:          p.Date,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		Categories:    Map(p.Categories, NewCategory),
	}
}

func NewRelatedSummary(p blog.RelatedPost) PostSummary {
	return PostSummary{
		Slug:          p.Slug,
		Date:          p.Date,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
	}
}

func NewPost(p blog.ResolvedPost) Post {
	return Post{
		Language:      string(p.Language),
		Slug:          p.Slug,
		Date:          p.Date,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		FeaturedImage: p.FeaturedImage,
		Categories:    Map(p.Categories, NewCategory),
		ReadingTime:   p.ReadingTime,
		Related:       Map(p.Related, NewRelatedSummary),
	}
}

func NewPageResponse(posts []blog.Post, totalPages int) PageResponse {
	return PageResponse{
		Posts:      Map(posts, NewPostSummary),
		TotalPages: totalPages,
	}
}
