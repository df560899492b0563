package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorlens/creatorlens/internal/model"
)

type ChannelRepo struct {
	pool *pgxpool.Pool
}

func NewChannelRepo(pool *pgxpool.Pool) *ChannelRepo {
	return &ChannelRepo{pool: pool}
}

const channelColumns = `id, title, description, subscriber_count, video_count,
	       view_count, thumbnail_url, last_refreshed`

// FindByID returns a single channel by its canonical ID.
func (r *ChannelRepo) FindByID(ctx context.Context, channelID string) (*model.Channel, error) {
	query := `
		SELECT ` + channelColumns + `
		FROM channels
		WHERE id = $1`

	var ch model.Channel
	err := r.pool.QueryRow(ctx, query, channelID).Scan(
		&ch.ID, &ch.Title, &ch.Description, &ch.SubscriberCount, &ch.VideoCount,
		&ch.ViewCount, &ch.ThumbnailURL, &ch.LastRefreshed,
	)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// UpsertWithDailySnapshot writes the channel row and today's snapshot in one
// transaction. The snapshot upsert is a single atomic statement keyed on
// (channel_id, date), so a second run on the same date overwrites rather
// than duplicating.
func (r *ChannelRepo) UpsertWithDailySnapshot(ctx context.Context, m model.ChannelMetrics, day time.Time, earnings float64) (*model.Channel, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	upsert := `
		INSERT INTO channels (id, title, description, subscriber_count, video_count,
		                      view_count, thumbnail_url, last_refreshed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
		  title = EXCLUDED.title,
		  description = EXCLUDED.description,
		  subscriber_count = EXCLUDED.subscriber_count,
		  video_count = EXCLUDED.video_count,
		  view_count = EXCLUDED.view_count,
		  thumbnail_url = EXCLUDED.thumbnail_url,
		  last_refreshed = NOW()
		RETURNING ` + channelColumns

	var ch model.Channel
	err = tx.QueryRow(ctx, upsert,
		m.ID, m.Title, m.Description, m.SubscriberCount, m.VideoCount,
		m.ViewCount, m.ThumbnailURL,
	).Scan(
		&ch.ID, &ch.Title, &ch.Description, &ch.SubscriberCount, &ch.VideoCount,
		&ch.ViewCount, &ch.ThumbnailURL, &ch.LastRefreshed,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert channel: %w", err)
	}

	snapshot := `
		INSERT INTO channel_daily_stats (channel_id, date, subscribers, views, video_count, earnings_est)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (channel_id, date) DO UPDATE SET
		  subscribers = EXCLUDED.subscribers,
		  views = EXCLUDED.views,
		  video_count = EXCLUDED.video_count,
		  earnings_est = EXCLUDED.earnings_est`

	_, err = tx.Exec(ctx, snapshot,
		m.ID, day, m.SubscriberCount, m.ViewCount, m.VideoCount, earnings,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert daily snapshot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &ch, nil
}

// TopChannelsByViews returns up to n stored channels ordered by view count
// descending.
func (r *ChannelRepo) TopChannelsByViews(ctx context.Context, n int) ([]model.Channel, error) {
	query := `
		SELECT ` + channelColumns + `
		FROM channels
		ORDER BY view_count DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []model.Channel
	for rows.Next() {
		var ch model.Channel
		err := rows.Scan(
			&ch.ID, &ch.Title, &ch.Description, &ch.SubscriberCount, &ch.VideoCount,
			&ch.ViewCount, &ch.ThumbnailURL, &ch.LastRefreshed,
		)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}

// SnapshotsSince returns a channel's daily snapshots from the given date
// onward, ascending by date.
func (r *ChannelRepo) SnapshotsSince(ctx context.Context, channelID string, from time.Time) ([]model.DailyChannelSnapshot, error) {
	query := `
		SELECT channel_id, date, subscribers, views, video_count, earnings_est
		FROM channel_daily_stats
		WHERE channel_id = $1 AND date >= $2
		ORDER BY date ASC`

	rows, err := r.pool.Query(ctx, query, channelID, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []model.DailyChannelSnapshot
	for rows.Next() {
		var s model.DailyChannelSnapshot
		err := rows.Scan(&s.ChannelID, &s.Date, &s.Subscribers, &s.Views, &s.VideoCount, &s.EarningsEst)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// MonthlyReport aggregates the snapshot history into one row per calendar
// month, carrying the latest reading within each month (counters are
// cumulative, so the month-end reading is the month total).
func (r *ChannelRepo) MonthlyReport(ctx context.Context, channelID string) ([]model.MonthlyReportRow, error) {
	query := `
		SELECT DISTINCT ON (to_char(date, 'YYYY-MM'))
		       to_char(date, 'YYYY-MM') AS month, views, subscribers
		FROM channel_daily_stats
		WHERE channel_id = $1
		ORDER BY to_char(date, 'YYYY-MM') ASC, date DESC`

	rows, err := r.pool.Query(ctx, query, channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []model.MonthlyReportRow
	for rows.Next() {
		var row model.MonthlyReportRow
		if err := rows.Scan(&row.Month, &row.TotalViews, &row.TotalSubscribers); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// RecentlyRefreshed returns the IDs of the n most recently refreshed
// channels, for the background refresh loop.
func (r *ChannelRepo) RecentlyRefreshed(ctx context.Context, n int) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id FROM channels ORDER BY last_refreshed DESC LIMIT $1`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Totals returns aggregate row counts for the stats endpoint.
func (r *ChannelRepo) Totals(ctx context.Context) (*model.StatsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM channels),
			(SELECT COUNT(*) FROM videos),
			(SELECT COUNT(*) FROM channel_daily_stats)`

	var s model.StatsResponse
	err := r.pool.QueryRow(ctx, query).Scan(&s.TotalChannels, &s.TotalVideos, &s.TotalSnapshots)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
