package service

import (
	"context"
	"sort"
	"strings"

	"studysupport/internal/config"
	"studysupport/internal/domain"
	"studysupport/internal/dto"
)

// VideoService recommends videos related to the session's document.
type VideoService interface {
	Recommend(ctx context.Context, sessionID string) (*dto.VideosResponse, error)
}

type videoService struct {
	sessions domain.SessionRepository
	searcher domain.VideoSearcher
	cfg      config.YouTubeConfig
}

func NewVideoService(sessions domain.SessionRepository, searcher domain.VideoSearcher, cfg config.YouTubeConfig) VideoService {
	return &videoService{
		sessions: sessions,
		searcher: searcher,
		cfg:      cfg,
	}
}

func (s *videoService) Recommend(ctx context.Context, sessionID string) (*dto.VideosResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.HasDocument() {
		return nil, domain.NewError(domain.CodeNoDocument, "Upload and process a file first", nil)
	}

	query := BuildVideoQuery(session.Document.Text, s.cfg.QueryLength)
	candidates, err := s.searcher.Search(ctx, query, s.cfg.SearchSize)
	if err != nil {
		return nil, err
	}

	ranked := RankVideos(candidates, s.cfg.MaxResults)
	resp := &dto.VideosResponse{Query: query, Videos: make([]dto.VideoResponse, 0, len(ranked))}
	for _, v := range ranked {
		resp.Videos = append(resp.Videos, dto.VideoResponse{
			Title:     v.Title,
			URL:       v.URL,
			ViewCount: v.ViewCount,
			LikeCount: v.LikeCount,
		})
	}
	return resp, nil
}

// BuildVideoQuery derives the search query from document text: the first
// line, truncated to maxLen runes. No semantic summarization.
func BuildVideoQuery(text string, maxLen int) string {
	line := strings.TrimSpace(text)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}

	runes := []rune(line)
	if maxLen > 0 && len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return line
}

// RankVideos sorts candidates by engagement score (views + 2*likes)
// descending and returns the top n. The sort is stable: ties keep the search
// service's original order.
func RankVideos(videos []domain.RankedVideo, n int) []domain.RankedVideo {
	ranked := make([]domain.RankedVideo, len(videos))
	copy(ranked, videos)

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].EngagementScore() > ranked[b].EngagementScore()
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
