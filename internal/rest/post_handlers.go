package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ykadvisory/blog-portal/internal/blog"
	"github.com/ykadvisory/blog-portal/internal/wordpress"
)

type PostsRequest struct {
	Page     *int `query:"page"`
	PageSize *int `query:"pageSize"`
}

type SearchRequest struct {
	Query    string `query:"q"`
	Tags     string `query:"tags"`
	Page     *int   `query:"page"`
	PageSize *int   `query:"pageSize"`
}

type BlogHandler struct {
	manager *blog.Manager
	log     *slog.Logger
}

func NewBlogHandler(manager *blog.Manager, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		manager: manager,
		log:     log,
	}
}

// RegisterRoutes registers all routes for the handler
func (h *BlogHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.GET("/posts", h.Posts)
	api.GET("/posts/:slug", h.PostBySlug)
	api.GET("/search", h.Search)

	return e
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// sourceError hides the source failure behind a generic upstream message;
// internal detail must not leak to the public API.
func (h *BlogHandler) sourceError(c echo.Context, err error) error {
	if errors.Is(err, wordpress.ErrSourceUnavailable) {
		return h.handleError(c, err, http.StatusBadGateway, "content temporarily unavailable")
	}
	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

// Posts handles GET /api/v1/posts
// @Summary Get a page of posts
// @Description Retrieves one page of English posts plus the total page count for navigation
// @Tags posts
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 9)"
// @Success 200 {object} rest.PageResponse
// @Failure 400,500,502 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *BlogHandler) Posts(c echo.Context) error {
	var req PostsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, pageSize := pagination(req.Page, req.PageSize)
	if page < 1 || pageSize < 1 {
		return h.handleError(c, nil, http.StatusBadRequest, "page and pageSize must be positive")
	}

	ctx := c.Request().Context()

	posts, err := h.manager.PostsByPage(ctx, page, pageSize)
	if err != nil {
		return h.sourceError(c, err)
	}

	totalPages, err := h.manager.TotalPages(ctx, pageSize)
	if err != nil {
		return h.sourceError(c, err)
	}

	return c.JSON(http.StatusOK, NewPageResponse(posts, totalPages))
}

// PostBySlug handles GET /api/v1/posts/:slug
// @Summary Get a post by slug
// @Description Resolves the post in the requested language, with related posts and reading time
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Param lang query string false "Language preference: en or ko (default: en)"
// @Success 200 {object} rest.Post
// @Failure 404,500,502 {object} map[string]string
// @Router /api/v1/posts/{slug} [get]
func (h *BlogHandler) PostBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid slug")
	}

	lang := blog.ParseLanguage(c.QueryParam("lang"))

	resolved, err := h.manager.Resolve(c.Request().Context(), slug, lang)
	if err != nil {
		return h.sourceError(c, err)
	}
	if resolved == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "post not found"})
	}

	return c.JSON(http.StatusOK, NewPost(*resolved))
}

// Search handles GET /api/v1/search
// @Summary Search posts
// @Description Combines a free-text query and comma-separated tag names into one filtered page
// @Tags posts
// @Produce json
// @Param q query string false "Free-text query"
// @Param tags query string false "Comma-separated category names"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 9)"
// @Success 200 {object} rest.PageResponse
// @Failure 400,500,502 {object} map[string]string
// @Router /api/v1/search [get]
func (h *BlogHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, pageSize := pagination(req.Page, req.PageSize)
	if page < 1 || pageSize < 1 {
		return h.handleError(c, nil, http.StatusBadRequest, "page and pageSize must be positive")
	}

	result, err := h.manager.Search(c.Request().Context(), req.Query, splitTags(req.Tags), page, pageSize)
	if err != nil {
		return h.sourceError(c, err)
	}

	return c.JSON(http.StatusOK, NewPageResponse(result.Posts, result.TotalPages))
}

// Health handles GET /health
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *BlogHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
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

func splitTags(joined string) []string {
	if joined == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(joined, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
