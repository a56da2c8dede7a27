package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// GithubClient returns organization resources from the github api.
type GithubClient interface {
	RepositoriesByOrganization(ctx context.Context, org string) ([]Repository, error)
	ContributorsByRepository(ctx context.Context, owner string, name string, repoID int64) ([]Contributor, error)
	CommitActivityByRepository(ctx context.Context, owner string, name string, repoID int64) (CommitActivity, error)
	PullRequestsByRepository(ctx context.Context, owner string, name string, repoID int64) ([]PullRequest, error)
}

// RawStore persists one snapshot of records per resource type per
// organization. Write overwrites any previous snapshot.
type RawStore interface {
	Write(resource Resource, org string, records interface{}) (string, error)
}

// Service drives extraction of all configured resource types for an
// organization into the raw store.
type Service struct {
	client GithubClient
	store  RawStore
	l      logrus.FieldLogger
}

// NewService creates new Service instance.
func NewService(client GithubClient, store RawStore, l logrus.FieldLogger) *Service {
	return &Service{
		client: client,
		store:  store,
		l:      l,
	}
}

// Extract fetches every resource type for given organization and writes one
// snapshot file per type.
//
// The repository list is fetched first; its failure fails the whole run,
// since every child resource is keyed by a repository. Child resource types
// (contributors, commit activity, pull requests) are isolated failure
// domains: one type's failure is reported but does not halt the others, and
// already written snapshots are left in place. A type yielding zero records
// still produces an empty snapshot file.
func (s *Service) Extract(ctx context.Context, org string) error {
	if org == "" {
		return errors.New("organization cannot be empty")
	}

	repos, err := s.client.RepositoriesByOrganization(ctx, org)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", ResourceRepositories, err)
	}
	path, err := s.store.Write(ResourceRepositories, org, repos)
	if err != nil {
		return fmt.Errorf("writing %s snapshot: %w", ResourceRepositories, err)
	}
	s.l.Infof("extracted %d repositories to %s", len(repos), path)

	var errs []error
	for _, extract := range []struct {
		resource Resource
		run      func(context.Context, string, []Repository) error
	}{
		{ResourceContributors, s.extractContributors},
		{ResourceCommitActivity, s.extractCommitActivity},
		{ResourcePullRequests, s.extractPullRequests},
	} {
		if err := extract.run(ctx, org, repos); err != nil {
			s.l.Errorf("extracting %s failed: %v", extract.resource, err)
			errs = append(errs, fmt.Errorf("extracting %s: %w", extract.resource, err))
		}
	}

	return errors.Join(errs...)
}

func (s *Service) extractContributors(ctx context.Context, org string, repos []Repository) error {
	contributors := make([]Contributor, 0)
	for _, repo := range repos {
		cs, err := s.client.ContributorsByRepository(ctx, repo.OwnerLogin, repo.Name, repo.ID)
		if err != nil {
			return fmt.Errorf("repository %s: %w", repo.FullName, err)
		}
		contributors = append(contributors, cs...)
	}

	path, err := s.store.Write(ResourceContributors, org, contributors)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	s.l.Infof("extracted %d contributors to %s", len(contributors), path)

	return nil
}

func (s *Service) extractCommitActivity(ctx context.Context, org string, repos []Repository) error {
	series := make([]CommitActivity, 0, len(repos))
	for _, repo := range repos {
		activity, err := s.client.CommitActivityByRepository(ctx, repo.OwnerLogin, repo.Name, repo.ID)
		if err != nil {
			return fmt.Errorf("repository %s: %w", repo.FullName, err)
		}
		series = append(series, activity)
	}

	path, err := s.store.Write(ResourceCommitActivity, org, series)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	s.l.Infof("extracted commit activity for %d repositories to %s", len(series), path)

	return nil
}

func (s *Service) extractPullRequests(ctx context.Context, org string, repos []Repository) error {
	pulls := make([]PullRequest, 0)
	for _, repo := range repos {
		ps, err := s.client.PullRequestsByRepository(ctx, repo.OwnerLogin, repo.Name, repo.ID)
		if err != nil {
			return fmt.Errorf("repository %s: %w", repo.FullName, err)
		}
		pulls = append(pulls, ps...)
	}

	path, err := s.store.Write(ResourcePullRequests, org, pulls)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	s.l.Infof("extracted %d pull requests to %s", len(pulls), path)

	return nil
}
