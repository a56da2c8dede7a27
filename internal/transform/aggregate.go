package transform

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/kmichalik/orgmetrics/internal/app"
)

// Aggregate joins the typed tables into one summary record per repository.
//
// Contributor, activity and pull request rows are grouped by repository
// identifier and left-joined onto the repository table: a repository with no
// matching rows gets zero-valued aggregates, while rows referencing an
// unknown repository are dropped (referential completeness). Output is
// sorted by repository identifier ascending for reproducibility.
func Aggregate(t *Tables) []app.AggregatedRecord {
	type contributorAgg struct {
		count   int
		commits int
	}
	contributions := make(map[int64]contributorAgg)
	for _, c := range t.Contributors {
		agg := contributions[c.RepositoryID]
		agg.count++
		agg.commits += c.Commits
		contributions[c.RepositoryID] = agg
	}

	type activityAgg struct {
		total   int
		buckets []float64
	}
	activity := make(map[int64]activityAgg)
	for _, a := range t.CommitActivity {
		agg := activity[a.RepositoryID]
		for _, w := range a.Weeks {
			agg.total += w.Commits
			agg.buckets = append(agg.buckets, float64(w.Commits))
		}
		activity[a.RepositoryID] = agg
	}

	type pullAgg struct {
		count        int
		merged       int
		lastMergedAt *app.PullRequest
	}
	pulls := make(map[int64]pullAgg)
	for i := range t.PullRequests {
		p := t.PullRequests[i]
		agg := pulls[p.RepositoryID]
		agg.count++
		if p.MergedAt != nil {
			agg.merged++
			if agg.lastMergedAt == nil || p.MergedAt.After(*agg.lastMergedAt.MergedAt) {
				agg.lastMergedAt = &p
			}
		}
		pulls[p.RepositoryID] = agg
	}

	records := make([]app.AggregatedRecord, 0, len(t.Repositories))
	for _, repo := range t.Repositories {
		rec := app.AggregatedRecord{
			RepositoryID: repo.ID,
			Name:         repo.Name,
			OwnerLogin:   repo.OwnerLogin,
		}

		if agg, ok := contributions[repo.ID]; ok {
			rec.ContributorCount = agg.count
			rec.TotalAttributedCommits = agg.commits
		}

		if agg, ok := activity[repo.ID]; ok {
			rec.TotalActivityCommits = agg.total
			if mean, err := stats.Mean(agg.buckets); err == nil {
				rec.MeanWeeklyCommits = mean
			}
		}

		if agg, ok := pulls[repo.ID]; ok {
			rec.PullRequestCount = agg.count
			rec.MergedPullRequestCount = agg.merged
			if agg.lastMergedAt != nil {
				rec.LastMergedAt = agg.lastMergedAt.MergedAt
			}
			rec.AllPullRequestsMerged = agg.count > 0 && agg.merged == agg.count
		}

		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].RepositoryID < records[j].RepositoryID
	})

	return records
}
