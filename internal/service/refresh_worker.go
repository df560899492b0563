package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/creatorlens/creatorlens/internal/repository"
)

// RefreshWorker periodically re-analyzes known channels so daily snapshot
// history keeps accruing even without inbound traffic.
type RefreshWorker struct {
	analysis *AnalysisService
	channels *repository.ChannelRepo
	interval time.Duration
	batch    int
	stopCh   chan struct{}
}

// NewRefreshWorker creates a worker that ticks every interval, refreshing
// the batch most recently analyzed channels per tick.
func NewRefreshWorker(analysis *AnalysisService, channels *repository.ChannelRepo, interval time.Duration, batch int) *RefreshWorker {
	return &RefreshWorker{
		analysis: analysis,
		channels: channels,
		interval: interval,
		batch:    batch,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic refresh loop. It runs one tick immediately,
// then every interval, until the context is done or Stop is called.
func (w *RefreshWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Int("batch", w.batch).Msg("refresh-worker: starting")

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Info().Msg("refresh-worker: context done, stopping")
			return
		case <-w.stopCh:
			log.Info().Msg("refresh-worker: stopped")
			return
		}
	}
}

// Stop signals the worker loop to exit.
func (w *RefreshWorker) Stop() {
	close(w.stopCh)
}

func (w *RefreshWorker) tick(ctx context.Context) {
	ids, err := w.channels.RecentlyRefreshed(ctx, w.batch)
	if err != nil {
		log.Error().Err(err).Msg("refresh-worker: failed to list channels")
		return
	}

	refreshed := 0
	for _, id := range ids {
		if _, err := w.analysis.Analyze(ctx, id); err != nil {
			log.Warn().Err(err).Str("channel", id).Msg("refresh-worker: refresh failed")
			continue
		}
		refreshed++
	}

	if len(ids) > 0 {
		log.Info().Int("refreshed", refreshed).Int("total", len(ids)).Msg("refresh-worker: tick complete")
	}
}
