//go:generate mockery --name RepoProvider --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"

	"go_5_path_gen/internal/config"
	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"

	"github.com/google/go-github/v62/github"
)

// RepoProvider はモジュールに添える参考リポジトリを検索するインターフェースです。
type RepoProvider interface {
	SearchRepos(ctx context.Context, query string, limit int) ([]model.Repo, error)
}

type gitHubRepoProvider struct {
	client *github.Client
}

func NewGitHubRepoProvider(cfg *config.Config) RepoProvider {
	client := github.NewClient(nil)
	if cfg.GitHub.Token != "" {
		// 無認証だと検索APIのレート制限が厳しいのでトークンがあれば使う
		client = client.WithAuthToken(cfg.GitHub.Token)
	}
	return &gitHubRepoProvider{client: client}
}

func (p *gitHubRepoProvider) SearchRepos(ctx context.Context, query string, limit int) ([]model.Repo, error) {
	logger := middleware.GetLogger(ctx)

	opts := &github.SearchOptions{
		Sort:        "stars",
		Order:       "desc",
		ListOptions: github.ListOptions{PerPage: limit},
	}
	result, _, err := p.client.Search.Repositories(ctx, query, opts)
	if err != nil {
		logger.Error("GitHub repository search failed", "error", err, "query", query)
		return nil, fmt.Errorf("gitHubRepoProvider.SearchRepos: %w", err)
	}

	repos := make([]model.Repo, 0, len(result.Repositories))
	for _, r := range result.Repositories {
		if len(repos) >= limit {
			break
		}
		repos = append(repos, model.Repo{
			Name:        r.GetFullName(),
			Description: r.GetDescription(),
			URL:         r.GetHTMLURL(),
			Stars:       r.GetStargazersCount(),
			Language:    r.GetLanguage(),
			Owner:       r.GetOwner().GetLogin(),
		})
	}

	logger.Debug("GitHub search completed", "query", query, "results", len(repos))
	return repos, nil
}
