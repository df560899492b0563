package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/creatorlens/creatorlens/internal/apperr"
	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/youtube"
)

// AnalysisService is the channel-analysis pipeline: resolve, fetch,
// reconcile with the snapshot store, derive analytics, assemble one result.
type AnalysisService struct {
	client   MetricsClient
	channels ChannelStore
	videos   VideoStore
	resolver *ResolverService
	cache    *CacheService
}

func NewAnalysisService(client MetricsClient, channels ChannelStore, videos VideoStore, cache *CacheService) *AnalysisService {
	return &AnalysisService{
		client:   client,
		channels: channels,
		videos:   videos,
		resolver: NewResolverService(client),
		cache:    cache,
	}
}

// AnalyzeInput resolves free-text input to a canonical channel ID and runs
// the analysis on it. When the resolver returns several candidates the
// first (the search API's own relevance ranking) is selected.
func (s *AnalysisService) AnalyzeInput(ctx context.Context, rawInput string) (*model.AnalysisResult, error) {
	res, err := s.resolver.Resolve(ctx, rawInput)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeCached(ctx, res.First())
}

// AnalyzeCached serves a recent analysis from cache when available, running
// the full pipeline otherwise. Cache failures degrade to a fresh run.
func (s *AnalysisService) AnalyzeCached(ctx context.Context, channelID string) (*model.AnalysisResult, error) {
	if s.cache != nil {
		cached, err := s.cache.GetAnalysis(ctx, channelID)
		if err != nil {
			log.Warn().Err(err).Str("channel", channelID).Msg("cache: analysis get error")
		} else if cached != nil {
			var result model.AnalysisResult
			if err := json.Unmarshal(cached, &result); err == nil {
				return &result, nil
			}
		}
	}

	result, err := s.Analyze(ctx, channelID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAnalysis(ctx, channelID, result); err != nil {
			log.Warn().Err(err).Str("channel", channelID).Msg("cache: analysis set error")
		}
	}
	return result, nil
}

// Analyze runs the pipeline for one canonical channel ID. Each step is a
// commit point: a failure aborts the run but never rolls back what earlier
// steps already committed.
func (s *AnalysisService) Analyze(ctx context.Context, channelID string) (*model.AnalysisResult, error) {
	// Step 1: live channel metrics. NotFound propagates with no state written.
	metrics, err := s.client.FetchChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	// Step 2: channel row and today's snapshot commit together.
	today := utcDate(time.Now())
	earnings := EstimateEarnings(metrics.ViewCount, DefaultCPM)
	channel, err := s.channels.UpsertWithDailySnapshot(ctx, *metrics, today, earnings)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to persist channel state")
	}

	// Step 3: one page of uploads, upserted per video.
	videoMetrics, err := s.client.FetchVideos(ctx, metrics.UploadsPlaylist, youtube.MaxVideoPage)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.VideoSummary, 0, len(videoMetrics))
	for _, vm := range videoMetrics {
		publishedAt, err := time.Parse(time.RFC3339, vm.PublishedAt)
		if err != nil {
			return nil, apperr.Upstream(err, "malformed publish timestamp for video %s", vm.ID)
		}
		video, err := s.videos.Upsert(ctx, channel.ID, vm, publishedAt)
		if err != nil {
			return nil, apperr.Persistence(err, "failed to persist video %s", vm.ID)
		}
		summaries = append(summaries, model.VideoSummary{
			ID:          video.ID,
			Title:       video.Title,
			PublishedAt: video.PublishedAt,
			Duration:    video.Duration,
			Views:       video.ViewCount,
			Likes:       video.LikeCount,
			Comments:    video.CommentCount,
		})
	}

	// Step 4: derived analytics over the reconciled video set.
	history, err := s.channels.SnapshotsSince(ctx, channel.ID, today.AddDate(0, 0, -(GrowthTrendDays-1)))
	if err != nil {
		return nil, apperr.Persistence(err, "failed to read snapshot history")
	}
	growth := GrowthTrend(history, metrics.ViewCount, metrics.SubscriberCount, today)
	segments := SegmentVideos(summaries)
	strategy := UploadTimeHeuristic(summaries)

	// Step 5: assemble and sanitize.
	result := &model.AnalysisResult{
		Channel: model.ChannelSummary{
			ID:              channel.ID,
			Title:           channel.Title,
			Description:     channel.Description,
			ThumbnailURL:    channel.ThumbnailURL,
			SubscriberCount: channel.SubscriberCount,
			VideoCount:      channel.VideoCount,
			ViewCount:       channel.ViewCount,
		},
		KPIs:     computeKPIs(summaries, earnings),
		Segments: segments,
		Growth:   growth,
		Strategy: strategy,
		Videos:   summaries,
	}
	SanitizeResult(result)
	return result, nil
}

// Compare analyzes several inputs in sequence. Fewer than two inputs is a
// validation error; any per-channel failure aborts the whole comparison.
func (s *AnalysisService) Compare(ctx context.Context, rawInputs []string) ([]model.AnalysisResult, error) {
	inputs := make([]string, 0, len(rawInputs))
	for _, in := range rawInputs {
		if in != "" {
			inputs = append(inputs, in)
		}
	}
	if len(inputs) < 2 {
		return nil, apperr.Validation("at least two channel inputs are required")
	}

	results := make([]model.AnalysisResult, 0, len(inputs))
	for _, in := range inputs {
		res, err := s.AnalyzeInput(ctx, in)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, nil
}

// Suggest returns resolver candidates for typeahead, cached per query.
func (s *AnalysisService) Suggest(ctx context.Context, query string) ([]model.Candidate, error) {
	if s.cache != nil {
		cached, err := s.cache.GetSuggestions(ctx, query)
		if err != nil {
			log.Warn().Err(err).Msg("cache: suggestions get error")
		} else if cached != nil {
			var candidates []model.Candidate
			if err := json.Unmarshal(cached, &candidates); err == nil {
				return candidates, nil
			}
		}
	}

	res, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates := res.Candidates
	if candidates == nil && res.ChannelID != "" {
		// Canonical ID input: a single exact candidate, no search ran.
		candidates = []model.Candidate{{ChannelID: res.ChannelID}}
	}

	if s.cache != nil {
		if err := s.cache.SetSuggestions(ctx, query, candidates); err != nil {
			log.Warn().Err(err).Msg("cache: suggestions set error")
		}
	}
	return candidates, nil
}

func computeKPIs(videos []model.VideoSummary, earnings float64) model.KPISet {
	kpis := model.KPISet{EstimatedEarnings: earnings}
	if len(videos) == 0 {
		return kpis
	}

	var viewSum int64
	var rateSum float64
	topIdx := 0
	for i, v := range videos {
		viewSum += v.Views
		rateSum += EngagementRate(v.Views, v.Likes, v.Comments)
		if v.Views > videos[topIdx].Views {
			topIdx = i
		}
	}

	n := float64(len(videos))
	kpis.AvgViews = round2(float64(viewSum) / n)
	kpis.EngagementRate = round2(rateSum / n)
	top := videos[topIdx]
	kpis.TopVideo = &top
	return kpis
}

// utcDate truncates an instant to its UTC calendar date. All snapshot
// bookkeeping uses this convention.
func utcDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
