package transform

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmichalik/orgmetrics/internal/app"
)

type resultWriterMock struct {
	table  string
	header []string
	rows   [][]string
	err    error
}

func (w *resultWriterMock) Write(table string, header []string, rows [][]string) (string, error) {
	if w.err != nil {
		return "", w.err
	}
	w.table = table
	w.header = header
	w.rows = rows
	return "/out/" + table + ".csv", nil
}

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestTransformerRun(t *testing.T) {
	t.Parallel()

	reader := emptySnapshots()
	reader[app.ResourceRepositories] = []byte(`[
		{"id": 1, "name": "repo1", "owner_login": "acme"}
	]`)
	reader[app.ResourceContributors] = []byte(`[
		{"repository_id": 1, "id": 11, "login": "alice", "commits": 3},
		{"repository_id": 1, "id": 12, "login": "bob", "commits": 5}
	]`)
	reader[app.ResourceCommitActivity] = []byte(`[
		{"repository_id": 1, "weeks": [
			{"week": 1700000000, "commits": 2},
			{"week": 1700604800, "commits": 4}
		]}
	]`)
	reader[app.ResourcePullRequests] = []byte(`[
		{"repository_id": 1, "number": 7, "state": "closed", "merged_at": "2024-03-01T09:30:00Z"}
	]`)

	results := &resultWriterMock{}
	tr := NewTransformer(NewLoader(reader), results, testLogger())

	path, err := tr.Run("acme")
	require.NoError(t, err)
	assert.Equal(t, "/out/repository_summary.csv", path)

	assert.Equal(t, SummaryTableName, results.table)
	assert.Equal(t, summaryHeader, results.header)
	require.Len(t, results.rows, 1)
	assert.Equal(t, []string{
		"1",
		"repo1",
		"acme",
		"2",
		"8",
		"6",
		"3",
		"1",
		"1",
		"2024-03-01T09:30:00Z",
		"true",
	}, results.rows[0])
}

func TestTransformerRunLoadFailure(t *testing.T) {
	t.Parallel()

	reader := emptySnapshots()
	reader[app.ResourceRepositories] = []byte(`[{"name": "repo1", "owner_login": "acme"}]`)

	tr := NewTransformer(NewLoader(reader), &resultWriterMock{}, testLogger())

	_, err := tr.Run("acme")
	require.Error(t, err)
	assert.True(t, app.IsSchemaError(err))
}

func TestSummaryRowsFormatting(t *testing.T) {
	t.Parallel()

	mergedAt := time.Date(2024, 6, 15, 8, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	rows := summaryRows([]app.AggregatedRecord{
		{
			RepositoryID:      5,
			Name:              "repo5",
			OwnerLogin:        "acme",
			MeanWeeklyCommits: 1.25,
			LastMergedAt:      &mergedAt,
		},
		{
			RepositoryID: 6,
			Name:         "repo6",
			OwnerLogin:   "acme",
		},
	})
	require.Len(t, rows, 2)

	// Fractional means keep full precision, timestamps are normalized to UTC.
	assert.Equal(t, "1.25", rows[0][6])
	assert.Equal(t, "2024-06-15T06:00:00Z", rows[0][9])

	// Zero-valued aggregates render explicitly.
	assert.Equal(t, "0", rows[1][3])
	assert.Equal(t, "", rows[1][9])
	assert.Equal(t, "false", rows[1][10])
}
