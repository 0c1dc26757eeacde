package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	var cfg Config
	cfg.WordPress.BaseURL = "https://example.com/wp-json/wp/v2"
	cfg.Mongo.URI = "mongodb://localhost:27017"
	cfg.Mongo.Database = "blog"
	cfg.Mongo.Collection = "translations"
	return &cfg
}

func TestConfig_Validate(t *testing.T) {
	t.Run("AcceptsCompleteConfig", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("RejectsMissingWordPressURL", func(t *testing.T) {
		cfg := validConfig()
		cfg.WordPress.BaseURL = ""

		err := cfg.Validate()
		require.ErrorIs(t, err, ErrConfigurationMissing)
		assert.Contains(t, err.Error(), "wordpress.baseurl")
	})

	t.Run("RejectsMissingMongoURI", func(t *testing.T) {
		cfg := validConfig()
		cfg.Mongo.URI = ""

		require.ErrorIs(t, cfg.Validate(), ErrConfigurationMissing)
	})
}

func TestConfig_Durations(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, 15*time.Second, cfg.WordPressTimeout())
	assert.Equal(t, time.Minute, cfg.Revalidate())

	cfg.WordPress.TimeoutSeconds = 30
	cfg.Blog.RevalidateSeconds = 300
	assert.Equal(t, 30*time.Second, cfg.WordPressTimeout())
	assert.Equal(t, 5*time.Minute, cfg.Revalidate())
}
