package main

import (
	"time"

	"github.com/kmichalik/orgmetrics/internal/app"
)

// Config is the container for app configuration
type Config struct {
	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (required)
	GithubAPIToken string `default:""`

	// GithubOrganization - organization to extract (required)
	GithubOrganization string `default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls per second
	GithubAPIRateLimit float64 `default:"1.2"`

	// GithubTimeout - timeout for single github api calls
	GithubTimeout time.Duration `default:"30s"`

	// MaxTransientRetries - retry cap for transient network/server failures
	MaxTransientRetries int `default:"5"`

	// RetryBaseDelay - initial backoff delay for retried page requests
	RetryBaseDelay time.Duration `default:"1s"`

	// RetryMaxDelay - backoff delay cap for retried page requests
	RetryMaxDelay time.Duration `default:"60s"`

	// ClientCacheSize - maximum number of elements in cache for each github client method
	ClientCacheSize int `default:"1024"`

	// ClientCacheTTL - maximum lifetime for github client cache entries
	ClientCacheTTL time.Duration `default:"10m"`

	// PageCachePath - filepath for bolt db holding cached page responses
	PageCachePath string `default:"./pagecache.db"`

	// PageCacheBucketName - bolt db bucket name
	PageCacheBucketName string `default:"pages"`

	// RawDataDir - directory for extracted resource snapshots
	RawDataDir string `default:"./data/input"`

	// OutputDir - directory for aggregated result tables
	OutputDir string `default:"./data/output"`
}

// Validate checks that required configuration is present.
// Called once at startup; the pipeline never reads the environment itself.
func (c Config) Validate() error {
	if c.GithubAPIToken == "" {
		return app.ConfigError("GITHUBAPITOKEN is required")
	}
	if c.GithubOrganization == "" {
		return app.ConfigError("GITHUBORGANIZATION is required")
	}
	if c.GithubAPIRateLimit <= 0 {
		return app.ConfigError("GITHUBAPIRATELIMIT must be positive")
	}

	return nil
}
