package model

import "time"

// Video is the persisted row for a single upload. The duration is stored
// verbatim as the upstream's ISO-8601 string (e.g. "PT4M13S"), never
// decomposed.
type Video struct {
	ID            string    `json:"id"`
	ChannelID     string    `json:"channelId"`
	Title         string    `json:"title"`
	PublishedAt   time.Time `json:"publishedAt"`
	Duration      string    `json:"duration"`
	ViewCount     int64     `json:"viewCount"`
	LikeCount     int64     `json:"likeCount"`
	CommentCount  int64     `json:"commentCount"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

// VideoMetrics is one live per-video reading from the YouTube Data API.
// PublishedAt is the upstream's timezone-qualified RFC 3339 string, parsed
// into an absolute instant by the orchestrator before persisting.
type VideoMetrics struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	PublishedAt  string `json:"publishedAt"`
	Duration     string `json:"duration"`
	ViewCount    int64  `json:"viewCount"`
	LikeCount    int64  `json:"likeCount"`
	CommentCount int64  `json:"commentCount"`
}

// VideoSummary is the per-video block of an analysis result.
type VideoSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	PublishedAt  time.Time `json:"publishedAt"`
	Duration     string    `json:"duration"`
	Views        int64     `json:"views"`
	Likes        int64     `json:"likes"`
	Comments     int64     `json:"comments"`
}
