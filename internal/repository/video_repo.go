package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorlens/creatorlens/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// Upsert inserts or overwrites a video row keyed by its canonical ID.
func (r *VideoRepo) Upsert(ctx context.Context, channelID string, m model.VideoMetrics, publishedAt time.Time) (*model.Video, error) {
	query := `
		INSERT INTO videos (id, channel_id, title, published_at, duration,
		                    view_count, like_count, comment_count, last_refreshed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
		  channel_id = EXCLUDED.channel_id,
		  title = EXCLUDED.title,
		  published_at = EXCLUDED.published_at,
		  duration = EXCLUDED.duration,
		  view_count = EXCLUDED.view_count,
		  like_count = EXCLUDED.like_count,
		  comment_count = EXCLUDED.comment_count,
		  last_refreshed = NOW()
		RETURNING id, channel_id, title, published_at, duration,
		          view_count, like_count, comment_count, last_refreshed`

	var v model.Video
	err := r.pool.QueryRow(ctx, query,
		m.ID, channelID, m.Title, publishedAt, m.Duration,
		m.ViewCount, m.LikeCount, m.CommentCount,
	).Scan(
		&v.ID, &v.ChannelID, &v.Title, &v.PublishedAt, &v.Duration,
		&v.ViewCount, &v.LikeCount, &v.CommentCount, &v.LastRefreshed,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert video: %w", err)
	}
	return &v, nil
}

// ListByChannel returns all stored videos for a channel, newest first.
func (r *VideoRepo) ListByChannel(ctx context.Context, channelID string) ([]model.Video, error) {
	query := `
		SELECT id, channel_id, title, published_at, duration,
		       view_count, like_count, comment_count, last_refreshed
		FROM videos
		WHERE channel_id = $1
		ORDER BY published_at DESC`

	rows, err := r.pool.Query(ctx, query, channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		err := rows.Scan(
			&v.ID, &v.ChannelID, &v.Title, &v.PublishedAt, &v.Duration,
			&v.ViewCount, &v.LikeCount, &v.CommentCount, &v.LastRefreshed,
		)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}
