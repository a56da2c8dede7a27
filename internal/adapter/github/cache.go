package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/kmichalik/orgmetrics/internal/app"
)

// CachedClient wraps github client with an in-process caching layer.
// Useful for long-lived processes repeating extraction runs: entries live
// for ttl and are keyed per organization or repository.
type CachedClient struct {
	client        app.GithubClient
	reposCache    *lru.Cache
	contribCache  *lru.Cache
	activityCache *lru.Cache
	pullsCache    *lru.Cache
	ttl           time.Duration
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size < 1 {
		return nil, errors.New("cache size must be greater than zero")
	}

	caches := make([]*lru.Cache, 4)
	for i := range caches {
		c, err := lru.New(size)
		if err != nil {
			return nil, fmt.Errorf("creating lru cache: %w", err)
		}
		caches[i] = c
	}

	return &CachedClient{
		client:        client,
		reposCache:    caches[0],
		contribCache:  caches[1],
		activityCache: caches[2],
		pullsCache:    caches[3],
		ttl:           ttl,
	}, nil
}

type cacheEntry struct {
	created time.Time
	data    interface{}
}

func (c *CachedClient) lookup(cache *lru.Cache, key string) (interface{}, bool) {
	v, ok := cache.Get(key)
	if !ok {
		return nil, false
	}
	entry := v.(cacheEntry)
	if time.Since(entry.created) > c.ttl {
		cache.Remove(key)
		return nil, false
	}
	return entry.data, true
}

func (c *CachedClient) save(cache *lru.Cache, key string, data interface{}) {
	cache.Add(key, cacheEntry{
		created: time.Now(),
		data:    data,
	})
}

// RepositoriesByOrganization returns all repositories of given organization.
// Returns cached data if available.
func (c *CachedClient) RepositoriesByOrganization(ctx context.Context, org string) ([]app.Repository, error) {
	if data, ok := c.lookup(c.reposCache, org); ok {
		return data.([]app.Repository), nil
	}

	repos, err := c.client.RepositoriesByOrganization(ctx, org)
	if err != nil {
		return nil, err
	}
	c.save(c.reposCache, org, repos)

	return repos, nil
}

// ContributorsByRepository returns all contributors of given repository.
// Returns cached data if available.
func (c *CachedClient) ContributorsByRepository(ctx context.Context, owner string, name string, repoID int64) ([]app.Contributor, error) {
	key := owner + "/" + name
	if data, ok := c.lookup(c.contribCache, key); ok {
		return data.([]app.Contributor), nil
	}

	contributors, err := c.client.ContributorsByRepository(ctx, owner, name, repoID)
	if err != nil {
		return nil, err
	}
	c.save(c.contribCache, key, contributors)

	return contributors, nil
}

// CommitActivityByRepository returns the commit activity series of given
// repository. Returns cached data if available.
func (c *CachedClient) CommitActivityByRepository(ctx context.Context, owner string, name string, repoID int64) (app.CommitActivity, error) {
	key := owner + "/" + name
	if data, ok := c.lookup(c.activityCache, key); ok {
		return data.(app.CommitActivity), nil
	}

	activity, err := c.client.CommitActivityByRepository(ctx, owner, name, repoID)
	if err != nil {
		return app.CommitActivity{}, err
	}
	c.save(c.activityCache, key, activity)

	return activity, nil
}

// PullRequestsByRepository returns all pull requests of given repository.
// Returns cached data if available.
func (c *CachedClient) PullRequestsByRepository(ctx context.Context, owner string, name string, repoID int64) ([]app.PullRequest, error) {
	key := owner + "/" + name
	if data, ok := c.lookup(c.pullsCache, key); ok {
		return data.([]app.PullRequest), nil
	}

	pulls, err := c.client.PullRequestsByRepository(ctx, owner, name, repoID)
	if err != nil {
		return nil, err
	}
	c.save(c.pullsCache, key, pulls)

	return pulls, nil
}
