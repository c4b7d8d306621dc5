package videosearch

import (
	"context"
	"fmt"

	"studysupport/internal/domain"
	"studysupport/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	youtubev3 "google.golang.org/api/youtube/v3"
)

// YouTubeSearcher implements domain.VideoSearcher against the YouTube Data
// API: one search call for candidates, one videos call for statistics.
type YouTubeSearcher struct {
	svc *youtubev3.Service
}

func NewYouTubeSearcher(ctx context.Context, apiKey string) (*YouTubeSearcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key cannot be empty")
	}
	svc, err := youtubev3.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &YouTubeSearcher{svc: svc}, nil
}

// Search returns up to maxCandidates videos matching the query, each with its
// engagement statistics attached, in the service's result order. Candidates
// the statistics lookup doesn't cover are skipped.
func (s *YouTubeSearcher) Search(ctx context.Context, query string, maxCandidates int64) ([]domain.RankedVideo, error) {
	searchResp, err := s.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxCandidates).
		Context(ctx).
		Do()
	if err != nil {
		return nil, domain.NewExternalServiceError("youtube", err)
	}

	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	statsResp, err := s.svc.Videos.List([]string{"snippet", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, domain.NewExternalServiceError("youtube", err)
	}

	videos := make([]domain.RankedVideo, 0, len(statsResp.Items))
	for _, item := range statsResp.Items {
		if item.Snippet == nil || item.Statistics == nil {
			logger.Get().Debug("Skipping candidate without statistics", zap.String("video_id", item.Id))
			continue
		}
		videos = append(videos, domain.RankedVideo{
			Title:     item.Snippet.Title,
			URL:       fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.Id),
			ViewCount: int64(item.Statistics.ViewCount),
			LikeCount: int64(item.Statistics.LikeCount),
		})
	}
	return videos, nil
}

var _ domain.VideoSearcher = (*YouTubeSearcher)(nil)
