package service

import (
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/creatorlens/creatorlens/internal/model"
)

// DefaultCPM is the cost-per-thousand-views multiplier used for earnings
// estimation when no override is given.
const DefaultCPM = 2.0

// GrowthTrendDays is the length of the growth trend series, ending today.
const GrowthTrendDays = 15

// weekdayOrder fixes iteration order for heatmap output and best-day
// tie-breaking.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// EstimateEarnings computes estimated earnings from a cumulative view count:
// (views / 1000) * cpm, rounded to 2 decimals. Zero or absent views earn 0.
func EstimateEarnings(views int64, cpm float64) float64 {
	if views <= 0 {
		return 0
	}
	return round2(float64(views) / 1000 * cpm)
}

// EngagementRate computes (likes + comments) / max(views, 1) * 100 for one
// video. The max-with-1 guard avoids division by zero for videos with no
// recorded views, at the cost of a small downward bias.
func EngagementRate(views, likes, comments int64) float64 {
	denom := views
	if denom < 1 {
		denom = 1
	}
	return round2(float64(likes+comments) / float64(denom) * 100)
}

// SegmentVideos splits uploads into display segments: the top 10 by view
// count and the top 5 by raw interaction count, each entry annotated with
// its own engagement rate. Empty input yields empty segments, never nil
// panics.
func SegmentVideos(videos []model.VideoSummary) model.VideoSegments {
	segments := model.VideoSegments{
		TopViews:      []model.SegmentEntry{},
		TopEngagement: []model.SegmentEntry{},
	}
	if len(videos) == 0 {
		return segments
	}

	byViews := make([]model.VideoSummary, len(videos))
	copy(byViews, videos)
	sort.SliceStable(byViews, func(i, j int) bool {
		return byViews[i].Views > byViews[j].Views
	})

	byEngagement := make([]model.VideoSummary, len(videos))
	copy(byEngagement, videos)
	sort.SliceStable(byEngagement, func(i, j int) bool {
		return byEngagement[i].Likes+byEngagement[i].Comments >
			byEngagement[j].Likes+byEngagement[j].Comments
	})

	for _, v := range byViews[:min(10, len(byViews))] {
		segments.TopViews = append(segments.TopViews, model.SegmentEntry{
			Title:          v.Title,
			PublishedAt:    v.PublishedAt.Format(time.RFC3339),
			Views:          v.Views,
			Likes:          v.Likes,
			Comments:       v.Comments,
			EngagementRate: EngagementRate(v.Views, v.Likes, v.Comments),
		})
	}
	for _, v := range byEngagement[:min(5, len(byEngagement))] {
		segments.TopEngagement = append(segments.TopEngagement, model.SegmentEntry{
			Title:          v.Title,
			Views:          v.Views,
			EngagementRate: EngagementRate(v.Views, v.Likes, v.Comments),
		})
	}
	return segments
}

// GrowthTrend produces the 15-day daily series ending today. When the stored
// history holds at least two points in the window they are used as-is;
// otherwise the series is synthesized backward from the current counters
// with a monotonically increasing decay factor and per-day jitter, and every
// point is flagged Estimated so callers can tell placeholder data from real
// history.
func GrowthTrend(history []model.DailyChannelSnapshot, currentViews, currentSubs int64, now time.Time) []model.GrowthPoint {
	if len(history) >= 2 {
		points := make([]model.GrowthPoint, 0, len(history))
		for _, s := range history {
			points = append(points, model.GrowthPoint{
				Date:        s.Date.Format("2006-01-02"),
				Views:       s.Views,
				Subscribers: s.Subscribers,
				Estimated:   false,
			})
		}
		return points
	}

	points := make([]model.GrowthPoint, 0, GrowthTrendDays)
	for i := GrowthTrendDays - 1; i >= 0; i-- {
		date := now.UTC().AddDate(0, 0, -i)
		factor := 1.0 - float64(i)*0.01 - rand.Float64()*0.005
		points = append(points, model.GrowthPoint{
			Date:        date.Format("2006-01-02"),
			Views:       int64(float64(currentViews) * factor),
			Subscribers: int64(float64(currentSubs) * factor),
			Estimated:   true,
		})
	}
	return points
}

// UploadTimeHeuristic buckets uploads by (weekday, hour of publish) and
// averages view counts per bucket. BestDay is the weekday whose bucket
// averages sum highest, or "N/A" when there is nothing to analyze.
func UploadTimeHeuristic(videos []model.VideoSummary) model.UploadStrategy {
	strategy := model.UploadStrategy{Heatmap: []model.HeatmapCell{}, BestDay: "N/A"}
	if len(videos) == 0 {
		return strategy
	}

	type bucket struct {
		sum   int64
		count int64
	}
	buckets := make(map[[2]int]*bucket)
	for _, v := range videos {
		if v.PublishedAt.IsZero() {
			continue
		}
		t := v.PublishedAt.UTC()
		day := int(t.Weekday())
		key := [2]int{day, t.Hour()}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.sum += v.Views
		b.count++
	}
	if len(buckets) == 0 {
		return strategy
	}

	dayTotals := make(map[string]float64)
	// Walk days in fixed order so the heatmap and tie-breaks are stable.
	for dayIdx, dayName := range []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	} {
		for hour := 0; hour < 24; hour++ {
			b, ok := buckets[[2]int{dayIdx, hour}]
			if !ok {
				continue
			}
			avg := float64(b.sum) / float64(b.count)
			strategy.Heatmap = append(strategy.Heatmap, model.HeatmapCell{
				Day:   dayName,
				Hour:  hour,
				Score: avg,
			})
			dayTotals[dayName] += avg
		}
	}

	best := ""
	bestTotal := math.Inf(-1)
	for _, day := range weekdayOrder {
		if total, ok := dayTotals[day]; ok && total > bestTotal {
			best = day
			bestTotal = total
		}
	}
	if best != "" {
		strategy.BestDay = best
	}
	return strategy
}

// SanitizeResult replaces every NaN or infinite float in the result with 0.
// The external interface must only ever carry finite, JSON-representable
// numbers; this is the single serialization-boundary pass that guarantees it.
func SanitizeResult(r *model.AnalysisResult) {
	r.KPIs.AvgViews = sanitizeFloat(r.KPIs.AvgViews)
	r.KPIs.EngagementRate = sanitizeFloat(r.KPIs.EngagementRate)
	r.KPIs.EstimatedEarnings = sanitizeFloat(r.KPIs.EstimatedEarnings)
	for i := range r.Segments.TopViews {
		r.Segments.TopViews[i].EngagementRate = sanitizeFloat(r.Segments.TopViews[i].EngagementRate)
	}
	for i := range r.Segments.TopEngagement {
		r.Segments.TopEngagement[i].EngagementRate = sanitizeFloat(r.Segments.TopEngagement[i].EngagementRate)
	}
	for i := range r.Strategy.Heatmap {
		r.Strategy.Heatmap[i].Score = sanitizeFloat(r.Strategy.Heatmap[i].Score)
	}
}

func sanitizeFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
