package transform

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kmichalik/orgmetrics/internal/app"
)

// SummaryTableName is the output table holding one row per repository.
const SummaryTableName = "repository_summary"

// ResultWriter persists one aggregated table, overwriting any previous
// version.
type ResultWriter interface {
	Write(table string, header []string, rows [][]string) (string, error)
}

// Transformer runs the load, join and write stage of the pipeline.
// Any failure here is fatal for the run: aggregates depend on all inputs
// being present and referentially valid.
type Transformer struct {
	loader  *Loader
	results ResultWriter
	l       logrus.FieldLogger
}

// NewTransformer creates new Transformer instance.
func NewTransformer(loader *Loader, results ResultWriter, l logrus.FieldLogger) *Transformer {
	return &Transformer{
		loader:  loader,
		results: results,
		l:       l,
	}
}

// Run loads the raw snapshots of given organization, aggregates them and
// writes the summary table. Returns the written path.
func (t *Transformer) Run(org string) (string, error) {
	tables, err := t.loader.Load(org)
	if err != nil {
		return "", fmt.Errorf("loading tables: %w", err)
	}

	records := Aggregate(tables)

	path, err := t.results.Write(SummaryTableName, summaryHeader, summaryRows(records))
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", SummaryTableName, err)
	}
	t.l.Infof("wrote %d summary rows to %s", len(records), path)

	return path, nil
}

var summaryHeader = []string{
	"repository_id",
	"name",
	"owner_login",
	"contributor_count",
	"total_attributed_commits",
	"total_activity_commits",
	"mean_weekly_commits",
	"pr_count",
	"merged_pr_count",
	"last_merged_at",
	"all_prs_merged",
}

func summaryRows(records []app.AggregatedRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		lastMerged := ""
		if rec.LastMergedAt != nil {
			lastMerged = rec.LastMergedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, []string{
			strconv.FormatInt(rec.RepositoryID, 10),
			rec.Name,
			rec.OwnerLogin,
			strconv.Itoa(rec.ContributorCount),
			strconv.Itoa(rec.TotalAttributedCommits),
			strconv.Itoa(rec.TotalActivityCommits),
			strconv.FormatFloat(rec.MeanWeeklyCommits, 'f', -1, 64),
			strconv.Itoa(rec.PullRequestCount),
			strconv.Itoa(rec.MergedPullRequestCount),
			lastMerged,
			strconv.FormatBool(rec.AllPullRequestsMerged),
		})
	}

	return rows
}
