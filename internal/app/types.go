package app

import "time"

// Resource identifies one extracted collection type.
// Each resource maps to one RawStore snapshot file per organization.
type Resource string

// Resource types extracted by the pipeline.
const (
	ResourceRepositories   Resource = "repositories"
	ResourceContributors   Resource = "contributors"
	ResourceCommitActivity Resource = "commit_activity"
	ResourcePullRequests   Resource = "pull_requests"
)

// Repository entity. One record per repository per extraction run.
type Repository struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	FullName   string    `json:"full_name"`
	OwnerLogin string    `json:"owner_login"`
	CreatedAt  time.Time `json:"created_at"`
	Language   string    `json:"language"`
	Stars      int       `json:"stars"`
	Forks      int       `json:"forks"`
}

// Contributor entity. Identity is unique within its repository scope.
type Contributor struct {
	RepositoryID int64  `json:"repository_id"`
	ID           int64  `json:"id"`
	Login        string `json:"login"`
	Commits      int    `json:"commits"`
}

// WeekActivity is one time bucket of a repository's commit activity series.
type WeekActivity struct {
	Week    int64 `json:"week"`
	Commits int   `json:"commits"`
}

// CommitActivity entity. One weekly-bucketed series per repository.
type CommitActivity struct {
	RepositoryID int64          `json:"repository_id"`
	Weeks        []WeekActivity `json:"weeks"`
}

// PullRequest entity. MergedAt is nil for unmerged pull requests.
type PullRequest struct {
	RepositoryID int64      `json:"repository_id"`
	Number       int        `json:"number"`
	State        string     `json:"state"`
	MergedAt     *time.Time `json:"merged_at"`
}

// AggregatedRecord is the derived per-repository summary. It exists only
// downstream and is recomputed in full on every run.
type AggregatedRecord struct {
	RepositoryID           int64
	Name                   string
	OwnerLogin             string
	ContributorCount       int
	TotalAttributedCommits int
	TotalActivityCommits   int
	MeanWeeklyCommits      float64
	PullRequestCount       int
	MergedPullRequestCount int
	LastMergedAt           *time.Time
	AllPullRequestsMerged  bool
}
