package main

import (
	netHttp "net/http"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kmichalik/orgmetrics/internal/adapter/github"
	"github.com/kmichalik/orgmetrics/internal/app"
	"github.com/kmichalik/orgmetrics/internal/database"
	"github.com/kmichalik/orgmetrics/internal/limiter"
	"github.com/kmichalik/orgmetrics/internal/rawstore"
	"github.com/kmichalik/orgmetrics/internal/resultstore"
	"github.com/kmichalik/orgmetrics/internal/transform"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	if err := conf.Validate(); err != nil {
		l.Fatal(err)
	}

	root := &cobra.Command{
		Use:   "orgmetrics",
		Short: "Extracts github organization metadata and aggregates it into summary tables",
	}
	root.AddCommand(
		extractCmd(conf, l),
		transformCmd(conf, l),
		runCmd(conf, l),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func extractCmd(conf Config, l *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "extract",
		Short: "Fetch all resource types into raw snapshot files",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := newExtractionService(conf, l)
			if err != nil {
				return err
			}
			defer cleanup()

			return service.Extract(cmd.Context(), conf.GithubOrganization)
		},
	}
}

func transformCmd(conf Config, l *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "transform",
		Short: "Aggregate raw snapshots into summary tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			transformer, err := newTransformer(conf, l)
			if err != nil {
				return err
			}

			_, err = transformer.Run(conf.GithubOrganization)
			return err
		},
	}
}

func runCmd(conf Config, l *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Extract and transform in one go",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := newExtractionService(conf, l)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := service.Extract(cmd.Context(), conf.GithubOrganization); err != nil {
				return err
			}

			transformer, err := newTransformer(conf, l)
			if err != nil {
				return err
			}

			_, err = transformer.Run(conf.GithubOrganization)
			return err
		},
	}
}

// newExtractionService wires the extraction side of the pipeline:
// http client -> rate limiter -> etag page cache -> github client
// -> lru cache -> service.
func newExtractionService(conf Config, l *logrus.Logger) (*app.Service, func(), error) {
	httpClient := &netHttp.Client{
		Timeout: conf.GithubTimeout,
	}
	limitedClient := limiter.NewHTTPDoer(httpClient, conf.GithubAPIRateLimit)

	kvStore, err := database.NewBoltStore(conf.PageCachePath, conf.PageCacheBucketName)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := kvStore.Close(); err != nil {
			l.Errorf("closing page cache: %v", err)
		}
	}

	cachingDoer := github.NewETagDoer(
		limitedClient,
		kvStore,
		l.WithField("component", "etagDoer"),
	)

	retry := github.NewRetryPolicy(
		conf.MaxTransientRetries,
		conf.RetryBaseDelay,
		conf.RetryMaxDelay,
		l.WithField("component", "retryPolicy"),
	)
	githubClient := github.NewClient(
		cachingDoer,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
		retry,
	)
	cachedClient, err := github.NewCachedClient(
		githubClient,
		conf.ClientCacheSize,
		conf.ClientCacheTTL,
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	rawStore, err := rawstore.NewStore(conf.RawDataDir)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	service := app.NewService(
		cachedClient,
		rawStore,
		l.WithField("component", "service"),
	)

	return service, cleanup, nil
}

func newTransformer(conf Config, l *logrus.Logger) (*transform.Transformer, error) {
	rawStore, err := rawstore.NewStore(conf.RawDataDir)
	if err != nil {
		return nil, err
	}
	resultStore, err := resultstore.NewStore(conf.OutputDir)
	if err != nil {
		return nil, err
	}

	return transform.NewTransformer(
		transform.NewLoader(rawStore),
		resultStore,
		l.WithField("component", "transformer"),
	), nil
}
