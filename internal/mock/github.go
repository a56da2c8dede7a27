package mock

import (
	"context"

	"github.com/kmichalik/orgmetrics/internal/app"
)

// GithubClient mocks app.GithubClient.
type GithubClient struct {
	RepositoriesByOrganizationFunc func(ctx context.Context, org string) ([]app.Repository, error)
	ContributorsByRepositoryFunc   func(ctx context.Context, owner string, name string, repoID int64) ([]app.Contributor, error)
	CommitActivityByRepositoryFunc func(ctx context.Context, owner string, name string, repoID int64) (app.CommitActivity, error)
	PullRequestsByRepositoryFunc   func(ctx context.Context, owner string, name string, repoID int64) ([]app.PullRequest, error)
}

// RepositoriesByOrganization returns all repositories of given organization.
func (m *GithubClient) RepositoriesByOrganization(ctx context.Context, org string) ([]app.Repository, error) {
	if m.RepositoriesByOrganizationFunc != nil {
		return m.RepositoriesByOrganizationFunc(ctx, org)
	}

	return []app.Repository{}, nil
}

// ContributorsByRepository returns all contributors of given repository.
func (m *GithubClient) ContributorsByRepository(ctx context.Context, owner string, name string, repoID int64) ([]app.Contributor, error) {
	if m.ContributorsByRepositoryFunc != nil {
		return m.ContributorsByRepositoryFunc(ctx, owner, name, repoID)
	}

	return []app.Contributor{}, nil
}

// CommitActivityByRepository returns the commit activity series of given repository.
func (m *GithubClient) CommitActivityByRepository(ctx context.Context, owner string, name string, repoID int64) (app.CommitActivity, error) {
	if m.CommitActivityByRepositoryFunc != nil {
		return m.CommitActivityByRepositoryFunc(ctx, owner, name, repoID)
	}

	return app.CommitActivity{RepositoryID: repoID}, nil
}

// PullRequestsByRepository returns all pull requests of given repository.
func (m *GithubClient) PullRequestsByRepository(ctx context.Context, owner string, name string, repoID int64) ([]app.PullRequest, error) {
	if m.PullRequestsByRepositoryFunc != nil {
		return m.PullRequestsByRepositoryFunc(ctx, owner, name, repoID)
	}

	return []app.PullRequest{}, nil
}
