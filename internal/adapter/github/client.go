package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kmichalik/orgmetrics/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client extracts organization resources from the github rest api.
// This struct is an adapter for app.GithubClient.
//go:generate mockgen -destination mock/githubcli.go -package mock github.com/kmichalik/orgmetrics/internal/app GithubClient
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	retry     RetryPolicy

	perPage              int
	pageResponseMaxSize  int
	acceptWaitTime       time.Duration
	numRetriesOnAccepted int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
func NewClient(doer HTTPDoer, address string, authToken string, retry RetryPolicy) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,
		retry:     retry,

		perPage:              100,
		pageResponseMaxSize:  1024 * 1024 * 10,
		acceptWaitTime:       5 * time.Second,
		numRetriesOnAccepted: 7,
	}

	return &c
}

// RepositoriesByOrganization returns all repositories of given organization,
// in server-returned order.
func (c *Client) RepositoriesByOrganization(ctx context.Context, org string) ([]app.Repository, error) {
	if org == "" {
		return nil, errors.New("organization cannot be empty")
	}

	u := fmt.Sprintf("%s/orgs/%s/repos?per_page=%d", c.address, url.PathEscape(org), c.perPage)

	repos := make([]app.Repository, 0)
	err := c.fetchAllPages(ctx, u, func(body []byte) error {
		var resp repositoriesResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return &app.DecodeError{Err: err}
		}
		repos = append(repos, resp.toRepositories()...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching repositories: %w", err)
	}

	return repos, nil
}

// ContributorsByRepository returns all contributors of given repository with
// their attributed commit counts, in server-returned order.
func (c *Client) ContributorsByRepository(ctx context.Context, owner string, name string, repoID int64) ([]app.Contributor, error) {
	if owner == "" || name == "" {
		return nil, errors.New("repository owner and name cannot be empty")
	}

	u := fmt.Sprintf("%s/repos/%s/%s/contributors?per_page=%d", c.address, url.PathEscape(owner), url.PathEscape(name), c.perPage)

	contributors := make([]app.Contributor, 0)
	err := c.fetchAllPages(ctx, u, func(body []byte) error {
		var resp contributorsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return &app.DecodeError{Err: err}
		}
		contributors = append(contributors, resp.toContributors(repoID)...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching contributors: %w", err)
	}

	return contributors, nil
}

// CommitActivityByRepository returns the weekly commit activity series of
// given repository.
//
// Github returns status 202 while computing the stats; such responses are
// retried a bounded number of times after a short wait.
func (c *Client) CommitActivityByRepository(ctx context.Context, owner string, name string, repoID int64) (app.CommitActivity, error) {
	activity := app.CommitActivity{RepositoryID: repoID}
	if owner == "" || name == "" {
		return activity, errors.New("repository owner and name cannot be empty")
	}

	u := fmt.Sprintf("%s/repos/%s/%s/stats/commit_activity", c.address, url.PathEscape(owner), url.PathEscape(name))

	var body []byte
	var tries int
	for {
		tries++
		p, err := c.fetchPageWithRetry(ctx, u)
		if err != nil {
			return activity, fmt.Errorf("fetching commit activity: %w", err)
		}
		if p.status == http.StatusAccepted {
			if tries < c.numRetriesOnAccepted {
				time.Sleep(c.acceptWaitTime)
				continue
			}
			return activity, errors.New("too many retries with status 202")
		}
		body = p.body
		break
	}

	var resp commitActivityResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return activity, &app.DecodeError{Err: err}
	}

	return resp.toActivity(repoID), nil
}

// PullRequestsByRepository returns all pull requests of given repository in
// any state, in server-returned order.
func (c *Client) PullRequestsByRepository(ctx context.Context, owner string, name string, repoID int64) ([]app.PullRequest, error) {
	if owner == "" || name == "" {
		return nil, errors.New("repository owner and name cannot be empty")
	}

	u := fmt.Sprintf("%s/repos/%s/%s/pulls?state=all&per_page=%d", c.address, url.PathEscape(owner), url.PathEscape(name), c.perPage)

	pulls := make([]app.PullRequest, 0)
	err := c.fetchAllPages(ctx, u, func(body []byte) error {
		var resp pullRequestsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return &app.DecodeError{Err: err}
		}
		pulls = append(pulls, resp.toPullRequests(repoID)...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching pull requests: %w", err)
	}

	return pulls, nil
}

// page is the result of fetching one url of a paginated collection.
// Empty next means end of stream.
type page struct {
	body   []byte
	next   string
	status int
}

// fetchAllPages walks a paginated collection from startURL, invoking each
// with every page body in server-returned order. A failed page is retried at
// the same url, so the accumulated stream has no gaps or duplicates.
func (c *Client) fetchAllPages(ctx context.Context, startURL string, each func(body []byte) error) error {
	u := startURL
	for u != "" {
		p, err := c.fetchPageWithRetry(ctx, u)
		if err != nil {
			return err
		}
		if err := each(p.body); err != nil {
			return err
		}
		u = p.next
	}

	return nil
}

func (c *Client) fetchPageWithRetry(ctx context.Context, url string) (page, error) {
	var p page
	err := c.retry.Do(ctx, func() error {
		var err error
		p, err = c.fetchPage(ctx, url)
		return err
	})

	return p, err
}

// fetchPage issues one request and classifies the outcome. All error returns
// are typed for the retry policy: rate limiting, auth rejection and
// transient failures are told apart here.
func (c *Client) fetchPage(ctx context.Context, url string) (page, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return page{}, fmt.Errorf("creating http request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" {
		httpReq.Header.Set("Authorization", "token "+c.authToken)
	}

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		return page{}, &app.NetworkError{Err: err}
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return page{}, &app.AuthError{StatusCode: resp.StatusCode}

	case resp.StatusCode == http.StatusTooManyRequests:
		return page{}, &app.RateLimitError{ResetAt: rateLimitReset(resp.Header)}

	case resp.StatusCode == http.StatusForbidden:
		if rateLimitRemaining(resp.Header) == 0 {
			return page{}, &app.RateLimitError{ResetAt: rateLimitReset(resp.Header)}
		}
		// 403 without rate limit semantics is a credential problem.
		return page{}, &app.AuthError{StatusCode: resp.StatusCode}

	case resp.StatusCode >= http.StatusInternalServerError:
		return page{}, &app.NetworkError{StatusCode: resp.StatusCode}

	case resp.StatusCode >= http.StatusBadRequest:
		return page{}, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.pageResponseMaxSize)+1))
	if err != nil {
		return page{}, &app.NetworkError{Err: fmt.Errorf("reading http response body: %w", err)}
	}
	if len(body) > c.pageResponseMaxSize {
		return page{}, fmt.Errorf("response body exceeds %d bytes", c.pageResponseMaxSize)
	}

	return page{
		body:   body,
		next:   nextPageURL(resp.Header.Get("Link")),
		status: resp.StatusCode,
	}, nil
}

// rateLimitRemaining reads X-RateLimit-Remaining. Returns -1 when absent.
func rateLimitRemaining(h http.Header) int {
	s := h.Get("X-RateLimit-Remaining")
	if s == "" {
		return -1
	}
	remaining, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return remaining
}

// rateLimitReset reads X-RateLimit-Reset. Returns zero time when absent.
func rateLimitReset(h http.Header) time.Time {
	s := h.Get("X-RateLimit-Reset")
	if s == "" {
		return time.Time{}
	}
	unix, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}
