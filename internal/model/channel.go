package model

import "time"

// Channel is the persisted row for a YouTube channel. One row per canonical
// ID, refreshed in place on every analysis.
type Channel struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	SubscriberCount int64     `json:"subscriberCount"`
	VideoCount      int64     `json:"videoCount"`
	ViewCount       int64     `json:"viewCount"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	LastRefreshed   time.Time `json:"lastRefreshed"`
}

// ChannelMetrics is one live reading from the YouTube Data API, including
// the uploads playlist reference needed to list the channel's videos.
type ChannelMetrics struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ThumbnailURL    string `json:"thumbnailUrl"`
	SubscriberCount int64  `json:"subscriberCount"`
	VideoCount      int64  `json:"videoCount"`
	ViewCount       int64  `json:"viewCount"`
	UploadsPlaylist string `json:"-"`
}

// Candidate is one channel returned by a name search. Enriched is false when
// the details call could not supply a subscriber count and the entry carries
// snippet data only.
type Candidate struct {
	ChannelID       string `json:"channelId"`
	Title           string `json:"title"`
	SubscriberCount int64  `json:"subscriberCount"`
	Enriched        bool   `json:"-"`
}

// ChannelSummary is the channel block of an analysis result.
type ChannelSummary struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ThumbnailURL    string `json:"thumbnailUrl"`
	SubscriberCount int64  `json:"subscriberCount"`
	VideoCount      int64  `json:"videoCount"`
	ViewCount       int64  `json:"viewCount"`
}

// StatsResponse is the API response for aggregate service statistics.
type StatsResponse struct {
	TotalChannels  int64 `json:"totalChannels"`
	TotalVideos    int64 `json:"totalVideos"`
	TotalSnapshots int64 `json:"totalSnapshots"`
}
