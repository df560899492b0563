package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/creatorlens/creatorlens/internal/apperr"
	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/repository"
)

// DefaultTopChannels is how many channels the top-channels listing returns.
const DefaultTopChannels = 5

// ReportService serves read-only views over the snapshot store: monthly
// aggregates, top channels, and stored channel readouts.
type ReportService struct {
	channels *repository.ChannelRepo
	videos   *repository.VideoRepo
}

func NewReportService(channels *repository.ChannelRepo, videos *repository.VideoRepo) *ReportService {
	return &ReportService{channels: channels, videos: videos}
}

// ChannelVideos returns the stored uploads for a channel, newest first.
// Serving from the store avoids an upstream call for data the last analysis
// already reconciled.
func (s *ReportService) ChannelVideos(ctx context.Context, channelID string) ([]model.Video, error) {
	videos, err := s.videos.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to list videos")
	}
	if videos == nil {
		videos = []model.Video{}
	}
	return videos, nil
}

// Monthly returns the month-by-month report for a channel, ascending.
// A channel with no snapshot history is a NotFound.
func (s *ReportService) Monthly(ctx context.Context, channelID string) ([]model.MonthlyReportRow, error) {
	report, err := s.channels.MonthlyReport(ctx, channelID)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to read monthly report")
	}
	if len(report) == 0 {
		return nil, apperr.NotFound("no snapshot history for channel %s", channelID)
	}
	return report, nil
}

// TopChannels returns summaries of the top n stored channels by view count.
func (s *ReportService) TopChannels(ctx context.Context, n int) ([]model.ChannelSummary, error) {
	if n <= 0 {
		n = DefaultTopChannels
	}
	channels, err := s.channels.TopChannelsByViews(ctx, n)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to list top channels")
	}

	summaries := make([]model.ChannelSummary, 0, len(channels))
	for _, ch := range channels {
		summaries = append(summaries, model.ChannelSummary{
			ID:              ch.ID,
			Title:           ch.Title,
			Description:     ch.Description,
			ThumbnailURL:    ch.ThumbnailURL,
			SubscriberCount: ch.SubscriberCount,
			VideoCount:      ch.VideoCount,
			ViewCount:       ch.ViewCount,
		})
	}
	return summaries, nil
}

// ChannelStats returns the stored channel row for the dashboard readout.
func (s *ReportService) ChannelStats(ctx context.Context, channelID string) (*model.Channel, error) {
	ch, err := s.channels.FindByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("channel %s has not been analyzed yet", channelID)
		}
		return nil, apperr.Persistence(err, "failed to read channel")
	}
	return ch, nil
}

// Totals returns aggregate service statistics.
func (s *ReportService) Totals(ctx context.Context) (*model.StatsResponse, error) {
	stats, err := s.channels.Totals(ctx)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to read statistics")
	}
	return stats, nil
}
