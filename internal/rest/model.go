package rest

import "time"

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PostSummary struct {
	ID            int        `json:"id,omitempty"`
	Slug          string     `json:"slug"`
	Date          time.Time  `json:"date"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Categories    []Category `json:"categories,omitempty"`
}

type Post struct {
	Language      string        `json:"language"`
	Slug          string        `json:"slug"`
	Date          time.Time     `json:"date"`
	Title         string        `json:"title"`
	Excerpt       string        `json:"excerpt"`
	Content       string        `json:"content"`
	FeaturedImage string        `json:"featuredImage,omitempty"`
	Categories    []Category    `json:"categories,omitempty"`
	ReadingTime   int           `json:"readingTime"`
	Related       []PostSummary `json:"related,omitempty"`
}

type PageResponse struct {
	Posts      []PostSummary `json:"posts"`
	TotalPages int           `json:"totalPages"`
}
