package service

import (
	"context"
	"time"

	"github.com/creatorlens/creatorlens/internal/model"
)

// MetricsClient is the outbound interface to the video platform API.
// Implemented by youtube.Client.
type MetricsClient interface {
	FetchChannel(ctx context.Context, channelID string) (*model.ChannelMetrics, error)
	FetchVideos(ctx context.Context, uploadsRef string, maxResults int64) ([]model.VideoMetrics, error)
	Search(ctx context.Context, query string, limit int64) ([]model.Candidate, error)
}

// ChannelStore is the channel-side snapshot store surface the orchestrator
// depends on. Implemented by repository.ChannelRepo.
type ChannelStore interface {
	UpsertWithDailySnapshot(ctx context.Context, m model.ChannelMetrics, day time.Time, earnings float64) (*model.Channel, error)
	SnapshotsSince(ctx context.Context, channelID string, from time.Time) ([]model.DailyChannelSnapshot, error)
}

// VideoStore is the video-side snapshot store surface.
// Implemented by repository.VideoRepo.
type VideoStore interface {
	Upsert(ctx context.Context, channelID string, m model.VideoMetrics, publishedAt time.Time) (*model.Video, error)
}
