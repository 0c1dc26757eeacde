package rpc

import (
	"context"
	"strings"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/ykadvisory/blog-portal/internal/blog"
)

//go:generate zenrpc

// BlogService provides RPC methods for the blog surface.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewBlogService(manager *blog.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// List retrieves one page of English posts plus the total page count.
//
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=9 items per page
//zenrpc:return page of posts with total page count
//zenrpc:400 page and pageSize must be positive
//zenrpc:500 internal server error
func (s *BlogService) List(ctx context.Context, req ListRequest) (PageResponse, error) {
	page, pageSize := pagination(req.Page, req.PageSize)
	if page < 1 || pageSize < 1 {
		return PageResponse{}, zenrpc.NewStringError(400, "page and pageSize must be positive")
	}

	posts, err := s.manager.PostsByPage(ctx, page, pageSize)
	if err != nil {
		return PageResponse{}, err
	}

	totalPages, err := s.manager.TotalPages(ctx, pageSize)
	if err != nil {
		return PageResponse{}, err
	}

	return NewPageResponse(posts, totalPages), nil
}

// BySlug resolves a post in the requested language, with related posts and
// reading time.
//
//zenrpc:slug post slug
//zenrpc:lang language preference, "en" or "ko"
//zenrpc:return resolved post
//zenrpc:400 slug is required
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) BySlug(ctx context.Context, req BySlugRequest) (*Post, error) {
	if req.Slug == "" {
		return nil, zenrpc.NewStringError(400, "slug is required")
	}

	resolved, err := s.manager.Resolve(ctx, req.Slug, blog.ParseLanguage(req.Lang))
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	post := NewPost(*resolved)
	return &post, nil
}

// Search combines a free-text query and tag names into one filtered page.
//
//zenrpc:q free-text query
//zenrpc:tags comma-separated category names
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=9 items per page
//zenrpc:return filtered page of posts
//zenrpc:400 page and pageSize must be positive
//zenrpc:500 internal server error
func (s *BlogService) Search(ctx context.Context, req SearchRequest) (PageResponse, error) {
	page, pageSize := pagination(req.Page, req.PageSize)
	if page < 1 || pageSize < 1 {
		return PageResponse{}, zenrpc.NewStringError(400, "page and pageSize must be positive")
	}

	var tags []string
	for _, tag := range strings.Split(req.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	result, err := s.manager.Search(ctx, req.Query, tags, page, pageSize)
	if err != nil {
		return PageResponse{}, err
	}

	return NewPageResponse(result.Posts, result.TotalPages), nil
}

func pagination(page, pageSize *int) (int, int) {
	p, size := 1, blog.DefaultPageSize
	if page != nil {
		p = *page
	}
	if pageSize != nil {
		size = *pageSize
	}
	return p, size
}
