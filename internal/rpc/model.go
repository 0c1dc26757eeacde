package rpc

import "time"

type ListRequest struct {
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=9 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

type BySlugRequest struct {
	//slug post slug
	Slug string `json:"slug"`
	//lang language preference, "en" or "ko"
	Lang string `json:"lang,omitempty"`
}

type SearchRequest struct {
	//q free-text query
	Query string `json:"q,omitempty"`
	//tags comma-separated category names
	Tags string `json:"tags,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=9 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

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
