package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmichalik/orgmetrics/internal/app"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	tables := &Tables{
		Repositories: []app.Repository{
			{ID: 1, Name: "repo1", OwnerLogin: "acme"},
		},
		Contributors: []app.Contributor{
			{RepositoryID: 1, ID: 11, Login: "alice", Commits: 3},
			{RepositoryID: 1, ID: 12, Login: "bob", Commits: 5},
		},
		CommitActivity: []app.CommitActivity{
			{
				RepositoryID: 1,
				Weeks: []app.WeekActivity{
					{Week: 1700000000, Commits: 2},
					{Week: 1700604800, Commits: 4},
				},
			},
		},
	}

	records := Aggregate(tables)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, int64(1), rec.RepositoryID)
	assert.Equal(t, "repo1", rec.Name)
	assert.Equal(t, 2, rec.ContributorCount)
	assert.Equal(t, 8, rec.TotalAttributedCommits)
	assert.Equal(t, 6, rec.TotalActivityCommits)
	assert.InDelta(t, 3.0, rec.MeanWeeklyCommits, 1e-9)
}

func TestAggregateZeroFillsUnmatchedRepositories(t *testing.T) {
	t.Parallel()

	tables := &Tables{
		Repositories: []app.Repository{
			{ID: 1, Name: "active", OwnerLogin: "acme"},
			{ID: 2, Name: "silent", OwnerLogin: "acme"},
		},
		Contributors: []app.Contributor{
			{RepositoryID: 1, ID: 11, Login: "alice", Commits: 3},
		},
	}

	records := Aggregate(tables)
	require.Len(t, records, 2)

	assert.Equal(t, 1, records[0].ContributorCount)
	assert.Equal(t, app.AggregatedRecord{
		RepositoryID: 2,
		Name:         "silent",
		OwnerLogin:   "acme",
	}, records[1])
}

func TestAggregateDropsOrphanRows(t *testing.T) {
	t.Parallel()

	tables := &Tables{
		Repositories: []app.Repository{
			{ID: 1, Name: "repo1", OwnerLogin: "acme"},
		},
		Contributors: []app.Contributor{
			{RepositoryID: 999, ID: 11, Login: "ghost", Commits: 100},
		},
		CommitActivity: []app.CommitActivity{
			{RepositoryID: 999, Weeks: []app.WeekActivity{{Week: 1700000000, Commits: 7}}},
		},
		PullRequests: []app.PullRequest{
			{RepositoryID: 999, Number: 1, State: "open"},
		},
	}

	records := Aggregate(tables)
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].ContributorCount)
	assert.Equal(t, 0, records[0].TotalActivityCommits)
	assert.Equal(t, 0, records[0].PullRequestCount)
}

func TestAggregateOrdersByRepositoryID(t *testing.T) {
	t.Parallel()

	tables := &Tables{
		Repositories: []app.Repository{
			{ID: 30, Name: "c", OwnerLogin: "acme"},
			{ID: 10, Name: "a", OwnerLogin: "acme"},
			{ID: 20, Name: "b", OwnerLogin: "acme"},
		},
	}

	records := Aggregate(tables)
	require.Len(t, records, 3)
	assert.Equal(t, int64(10), records[0].RepositoryID)
	assert.Equal(t, int64(20), records[1].RepositoryID)
	assert.Equal(t, int64(30), records[2].RepositoryID)
}

func TestAggregatePullRequests(t *testing.T) {
	t.Parallel()

	older := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tables := &Tables{
		Repositories: []app.Repository{
			{ID: 1, Name: "mixed", OwnerLogin: "acme"},
			{ID: 2, Name: "allmerged", OwnerLogin: "acme"},
			{ID: 3, Name: "nopulls", OwnerLogin: "acme"},
		},
		PullRequests: []app.PullRequest{
			{RepositoryID: 1, Number: 1, State: "closed", MergedAt: &newer},
			{RepositoryID: 1, Number: 2, State: "closed", MergedAt: &older},
			{RepositoryID: 1, Number: 3, State: "open"},
			{RepositoryID: 2, Number: 1, State: "closed", MergedAt: &older},
		},
	}

	records := Aggregate(tables)
	require.Len(t, records, 3)

	mixed := records[0]
	assert.Equal(t, 3, mixed.PullRequestCount)
	assert.Equal(t, 2, mixed.MergedPullRequestCount)
	require.NotNil(t, mixed.LastMergedAt)
	assert.Equal(t, newer, *mixed.LastMergedAt)
	assert.False(t, mixed.AllPullRequestsMerged)

	allMerged := records[1]
	assert.Equal(t, 1, allMerged.PullRequestCount)
	assert.True(t, allMerged.AllPullRequestsMerged)

	noPulls := records[2]
	assert.Equal(t, 0, noPulls.PullRequestCount)
	assert.Nil(t, noPulls.LastMergedAt)
	assert.False(t, noPulls.AllPullRequestsMerged)
}

func TestAggregateEmptyTables(t *testing.T) {
	t.Parallel()

	records := Aggregate(&Tables{})
	assert.Empty(t, records)
}
