//go:generate mockery --name VideoProvider --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"html"

	"go_5_path_gen/internal/config"
	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"
)

// VideoProvider はモジュールに添える学習動画を検索するインターフェースです。
type VideoProvider interface {
	SearchVideos(ctx context.Context, query string, limit int) ([]model.Video, error)
}

type youTubeVideoProvider struct {
	service *youtube.Service
}

func NewYouTubeVideoProvider(cfg *config.Config) (VideoProvider, error) {
	service, err := youtube.NewService(context.Background(), option.WithAPIKey(cfg.YouTube.APIKey))
	if err != nil {
		return nil, fmt.Errorf("NewYouTubeVideoProvider: %w", err)
	}
	return &youTubeVideoProvider{service: service}, nil
}

func (p *youTubeVideoProvider) SearchVideos(ctx context.Context, query string, limit int) ([]model.Video, error) {
	logger := middleware.GetLogger(ctx)

	call := p.service.Search.List([]string{"snippet"}).
		Q(query + " tutorial").
		Type("video").
		Order("relevance").
		SafeSearch("strict").
		MaxResults(int64(limit))

	resp, err := call.Context(ctx).Do()
	if err != nil {
		logger.Error("YouTube search failed", "error", err, "query", query)
		return nil, fmt.Errorf("youTubeVideoProvider.SearchVideos: %w", err)
	}

	videos := make([]model.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		video := model.Video{
			// APIはタイトルをHTMLエスケープして返す
			Title:       html.UnescapeString(item.Snippet.Title),
			Channel:     item.Snippet.ChannelTitle,
			URL:         "https://www.youtube.com/watch?v=" + item.Id.VideoId,
			PublishedAt: item.Snippet.PublishedAt,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
			video.ThumbnailURL = item.Snippet.Thumbnails.High.Url
		}
		videos = append(videos, video)
	}

	logger.Debug("YouTube search completed", "query", query, "results", len(videos))
	return videos, nil
}
