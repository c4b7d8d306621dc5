package domain

// RankedVideo is one recommendation candidate with its engagement counters.
// Produced fresh per request, never cached.
type RankedVideo struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	ViewCount int64  `json:"view_count"`
	LikeCount int64  `json:"like_count"`
}

// EngagementScore is the ranking heuristic: views plus twice the likes.
func (v RankedVideo) EngagementScore() int64 {
	return v.ViewCount + 2*v.LikeCount
}
