package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ykadvisory/blog-portal/config"
	"github.com/ykadvisory/blog-portal/internal/blog"
	"github.com/ykadvisory/blog-portal/internal/cache"
	"github.com/ykadvisory/blog-portal/internal/rest"
	"github.com/ykadvisory/blog-portal/internal/rpc"
	"github.com/ykadvisory/blog-portal/internal/translations"
	"github.com/ykadvisory/blog-portal/internal/wordpress"
)

type App struct {
	Translations *translations.Store
	Manager      *blog.Manager
	Logger       *slog.Logger
	Echo         *echo.Echo
	Config       *config.Config
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	content := wordpress.NewClient(cfg.WordPress.BaseURL, cfg.WordPressTimeout(), logger)
	store := translations.NewStore(cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection, logger)

	var corpusCache cache.Cache = cache.NewMemory()
	if cfg.Redis.Addr != "" {
		corpusCache = cache.NewRedis(redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr}))
		logger.Info("using redis corpus cache", "addr", cfg.Redis.Addr)
	}

	opts := []blog.Option{blog.WithRevalidate(cfg.Revalidate())}
	if cfg.Blog.FallbackToPrimary {
		opts = append(opts, blog.WithFallbackToPrimary())
	}

	manager := blog.NewManager(content, store, corpusCache, logger, opts...)

	handler := rest.NewBlogHandler(manager, logger)
	e := handler.RegisterRoutes()
	e.Any("/rpc", echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		Translations: store,
		Manager:      manager,
		Logger:       logger,
		Echo:         e,
		Config:       cfg,
	}, nil
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	if err := a.Translations.Close(ctx); err != nil {
		a.Logger.Error("translation store close failed", "error", err)
	}

	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
