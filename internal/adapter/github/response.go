package github

import (
	"time"

	"github.com/kmichalik/orgmetrics/internal/app"
)

type repositoriesResponse []repositoryResponseItem

type repositoryResponseItem struct {
	ID        int64                   `json:"id"`
	Name      string                  `json:"name"`
	FullName  string                  `json:"full_name"`
	Owner     repositoryResponseOwner `json:"owner"`
	CreatedAt time.Time               `json:"created_at"`
	Language  string                  `json:"language"`
	Stars     int                     `json:"stargazers_count"`
	Forks     int                     `json:"forks_count"`
}

type repositoryResponseOwner struct {
	Login string `json:"login"`
}

func (r repositoriesResponse) toRepositories() []app.Repository {
	repos := make([]app.Repository, 0, len(r))
	for _, item := range r {
		repos = append(repos, app.Repository{
			ID:         item.ID,
			Name:       item.Name,
			FullName:   item.FullName,
			OwnerLogin: item.Owner.Login,
			CreatedAt:  item.CreatedAt,
			Language:   item.Language,
			Stars:      item.Stars,
			Forks:      item.Forks,
		})
	}

	return repos
}

type contributorsResponse []struct {
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

func (r contributorsResponse) toContributors(repoID int64) []app.Contributor {
	contributors := make([]app.Contributor, 0, len(r))
	for _, item := range r {
		contributors = append(contributors, app.Contributor{
			RepositoryID: repoID,
			ID:           item.ID,
			Login:        item.Login,
			Commits:      item.Contributions,
		})
	}

	return contributors
}

type commitActivityResponse []struct {
	Week  int64 `json:"week"`
	Total int   `json:"total"`
}

func (r commitActivityResponse) toActivity(repoID int64) app.CommitActivity {
	weeks := make([]app.WeekActivity, 0, len(r))
	for _, bucket := range r {
		weeks = append(weeks, app.WeekActivity{
			Week:    bucket.Week,
			Commits: bucket.Total,
		})
	}

	return app.CommitActivity{
		RepositoryID: repoID,
		Weeks:        weeks,
	}
}

type pullRequestsResponse []struct {
	Number   int        `json:"number"`
	State    string     `json:"state"`
	MergedAt *time.Time `json:"merged_at"`
}

func (r pullRequestsResponse) toPullRequests(repoID int64) []app.PullRequest {
	pulls := make([]app.PullRequest, 0, len(r))
	for _, item := range r {
		pulls = append(pulls, app.PullRequest{
			RepositoryID: repoID,
			Number:       item.Number,
			State:        item.State,
			MergedAt:     item.MergedAt,
		})
	}

	return pulls
}
