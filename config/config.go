package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrConfigurationMissing marks a required connection target that was not
// supplied. Startup fails on it instead of issuing requests against an
// undefined endpoint.
var ErrConfigurationMissing = errors.New("required configuration missing")

type Config struct {
	App struct {
		Host string
		Port int
	}
	WordPress struct {
		BaseURL        string
		TimeoutSeconds int
	}
	Mongo struct {
		URI        string
		Database   string
		Collection string
	}
	// Redis is optional; with an empty Addr the corpus cache stays in memory.
	Redis struct {
		Addr string
	}
	Blog struct {
		// FallbackToPrimary serves English content for Korean requests that
		// have no stored translation instead of answering not found.
		FallbackToPrimary bool
		RevalidateSeconds int
	}
}

func (c *Config) Validate() error {
	if c.WordPress.BaseURL == "" {
		return fmt.Errorf("%w: wordpress.baseurl", ErrConfigurationMissing)
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("%w: mongo.uri", ErrConfigurationMissing)
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("%w: mongo.database", ErrConfigurationMissing)
	}
	return nil
}

func (c *Config) WordPressTimeout() time.Duration {
	if c.WordPress.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.WordPress.TimeoutSeconds) * time.Second
}

func (c *Config) Revalidate() time.Duration {
	if c.Blog.RevalidateSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.Blog.RevalidateSeconds) * time.Second
}
