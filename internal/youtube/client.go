// Package youtube wraps the YouTube Data API v3 calls used by the analysis
// pipeline: channel details, one page of the uploads playlist, and channel
// name search. The client performs no retries; a failed call fails the
// caller's whole run.
package youtube

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/creatorlens/creatorlens/internal/apperr"
	"github.com/creatorlens/creatorlens/internal/model"
)

// MaxVideoPage caps the uploads listing to a single API page. Channels with
// more uploads are undercounted; this is a documented limit, not a bug.
const MaxVideoPage = 50

type Client struct {
	svc *yt.Service
}

// NewClient builds a client from an API key. An empty key yields a client
// whose calls all fail with an upstream error instead of crashing startup.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return &Client{}, nil
	}
	svc, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

func (c *Client) ready() error {
	if c.svc == nil {
		return apperr.Upstream(nil, "YouTube API key is not configured")
	}
	return nil
}

// FetchChannel returns live metrics for one channel, or NotFound when the
// upstream has no matching row.
func (c *Client) FetchChannel(ctx context.Context, channelID string) (*model.ChannelMetrics, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	resp, err := c.svc.Channels.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, apperr.Upstream(err, "channel details request failed")
	}
	if len(resp.Items) == 0 {
		return nil, apperr.NotFound("channel %s not found", channelID)
	}

	item := resp.Items[0]
	m := &model.ChannelMetrics{
		ID:    item.Id,
		Title: item.Snippet.Title,
	}
	m.Description = item.Snippet.Description
	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
		m.ThumbnailURL = item.Snippet.Thumbnails.High.Url
	}
	if item.Statistics != nil {
		m.SubscriberCount = int64(item.Statistics.SubscriberCount)
		m.VideoCount = int64(item.Statistics.VideoCount)
		m.ViewCount = int64(item.Statistics.ViewCount)
	}
	if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
		m.UploadsPlaylist = item.ContentDetails.RelatedPlaylists.Uploads
	}
	return m, nil
}

// FetchVideos lists at most one page of the uploads playlist, then fetches
// statistics for exactly those items.
func (c *Client) FetchVideos(ctx context.Context, uploadsRef string, maxResults int64) ([]model.VideoMetrics, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if maxResults <= 0 || maxResults > MaxVideoPage {
		maxResults = MaxVideoPage
	}

	page, err := c.svc.PlaylistItems.
		List([]string{"snippet", "contentDetails"}).
		PlaylistId(uploadsRef).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, apperr.Upstream(err, "uploads listing request failed")
	}

	var ids []string
	for _, item := range page.Items {
		if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
			ids = append(ids, item.ContentDetails.VideoId)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	stats, err := c.svc.Videos.
		List([]string{"statistics", "contentDetails", "snippet"}).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, apperr.Upstream(err, "video statistics request failed")
	}

	videos := make([]model.VideoMetrics, 0, len(stats.Items))
	for _, item := range stats.Items {
		v := model.VideoMetrics{
			ID:    item.Id,
			Title: item.Snippet.Title,
		}
		v.PublishedAt = item.Snippet.PublishedAt
		if item.ContentDetails != nil {
			v.Duration = item.ContentDetails.Duration
		}
		if item.Statistics != nil {
			v.ViewCount = int64(item.Statistics.ViewCount)
			v.LikeCount = int64(item.Statistics.LikeCount)
			v.CommentCount = int64(item.Statistics.CommentCount)
		}
		videos = append(videos, v)
	}
	return videos, nil
}

// Search runs a channel name search and enriches each candidate with its
// subscriber count via a details call. When the details call fails the
// snippet-only candidates are returned as they are.
func (c *Client) Search(ctx context.Context, query string, limit int64) ([]model.Candidate, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	resp, err := c.svc.Search.
		List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, apperr.Upstream(err, "channel search request failed")
	}

	var base []model.Candidate
	var ids []string
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.ChannelId == "" {
			continue
		}
		title := item.Snippet.ChannelTitle
		if title == "" {
			title = item.Snippet.Title
		}
		base = append(base, model.Candidate{ChannelID: item.Id.ChannelId, Title: title})
		ids = append(ids, item.Id.ChannelId)
	}
	if len(base) == 0 {
		return nil, nil
	}

	details, err := c.svc.Channels.
		List([]string{"statistics"}).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do()
	if err != nil {
		// Fallback tier: unenriched snippet data.
		return base, nil
	}

	subs := make(map[string]int64, len(details.Items))
	for _, item := range details.Items {
		if item.Statistics != nil {
			subs[item.Id] = int64(item.Statistics.SubscriberCount)
		}
	}
	return EnrichCandidates(base, subs), nil
}

// EnrichCandidates merges subscriber counts into search candidates.
// Candidates without a matching details row stay unenriched.
func EnrichCandidates(base []model.Candidate, subs map[string]int64) []model.Candidate {
	out := make([]model.Candidate, len(base))
	for i, cand := range base {
		if n, ok := subs[cand.ChannelID]; ok {
			cand.SubscriberCount = n
			cand.Enriched = true
		}
		out[i] = cand
	}
	return out
}
