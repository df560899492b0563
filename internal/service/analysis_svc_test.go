package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/creatorlens/creatorlens/internal/apperr"
	"github.com/creatorlens/creatorlens/internal/model"
)

// fakeClient implements MetricsClient in memory and counts outbound calls.
type fakeClient struct {
	channels    map[string]*model.ChannelMetrics
	videos      map[string][]model.VideoMetrics
	candidates  []model.Candidate
	searchErr   error
	searchCalls int
	fetchCalls  int
}

func (f *fakeClient) FetchChannel(ctx context.Context, channelID string) (*model.ChannelMetrics, error) {
	f.fetchCalls++
	m, ok := f.channels[channelID]
	if !ok {
		return nil, apperr.NotFound("channel %s not found", channelID)
	}
	return m, nil
}

func (f *fakeClient) FetchVideos(ctx context.Context, uploadsRef string, maxResults int64) ([]model.VideoMetrics, error) {
	return f.videos[uploadsRef], nil
}

func (f *fakeClient) Search(ctx context.Context, query string, limit int64) ([]model.Candidate, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.candidates, nil
}

// fakeChannelStore keys snapshots by (channel, date) the way the real
// table's unique constraint does.
type fakeChannelStore struct {
	channels  map[string]model.Channel
	snapshots map[string]model.DailyChannelSnapshot
	upserts   int
}

func newFakeChannelStore() *fakeChannelStore {
	return &fakeChannelStore{
		channels:  make(map[string]model.Channel),
		snapshots: make(map[string]model.DailyChannelSnapshot),
	}
}

func snapshotKey(channelID string, day time.Time) string {
	return fmt.Sprintf("%s|%s", channelID, day.Format("2006-01-02"))
}

func (f *fakeChannelStore) UpsertWithDailySnapshot(ctx context.Context, m model.ChannelMetrics, day time.Time, earnings float64) (*model.Channel, error) {
	f.upserts++
	ch := model.Channel{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		ThumbnailURL:    m.ThumbnailURL,
		SubscriberCount: m.SubscriberCount,
		VideoCount:      m.VideoCount,
		ViewCount:       m.ViewCount,
		LastRefreshed:   time.Now().UTC(),
	}
	f.channels[m.ID] = ch
	f.snapshots[snapshotKey(m.ID, day)] = model.DailyChannelSnapshot{
		ChannelID:   m.ID,
		Date:        day,
		Subscribers: m.SubscriberCount,
		Views:       m.ViewCount,
		VideoCount:  m.VideoCount,
		EarningsEst: earnings,
	}
	return &ch, nil
}

func (f *fakeChannelStore) SnapshotsSince(ctx context.Context, channelID string, from time.Time) ([]model.DailyChannelSnapshot, error) {
	var out []model.DailyChannelSnapshot
	for _, s := range f.snapshots {
		if s.ChannelID == channelID && !s.Date.Before(from) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeVideoStore struct {
	rows map[string]model.Video
}

func newFakeVideoStore() *fakeVideoStore {
	return &fakeVideoStore{rows: make(map[string]model.Video)}
}

func (f *fakeVideoStore) Upsert(ctx context.Context, channelID string, m model.VideoMetrics, publishedAt time.Time) (*model.Video, error) {
	v := model.Video{
		ID:            m.ID,
		ChannelID:     channelID,
		Title:         m.Title,
		PublishedAt:   publishedAt,
		Duration:      m.Duration,
		ViewCount:     m.ViewCount,
		LikeCount:     m.LikeCount,
		CommentCount:  m.CommentCount,
		LastRefreshed: time.Now().UTC(),
	}
	f.rows[m.ID] = v
	return &v, nil
}

const testChannelID = "UCabcdefghijklmnopqrst12"

func newTestClient() *fakeClient {
	return &fakeClient{
		channels: map[string]*model.ChannelMetrics{
			testChannelID: {
				ID:              testChannelID,
				Title:           "Test Channel",
				SubscriberCount: 10000,
				VideoCount:      2,
				ViewCount:       500000,
				UploadsPlaylist: "UUabcdefghijklmnopqrst12",
			},
		},
		videos: map[string][]model.VideoMetrics{
			"UUabcdefghijklmnopqrst12": {
				{ID: "v1", Title: "First", PublishedAt: "2024-06-12T15:00:00Z", Duration: "PT4M13S", ViewCount: 4000, LikeCount: 200, CommentCount: 40},
				{ID: "v2", Title: "Second", PublishedAt: "2024-06-14T09:00:00Z", Duration: "PT10M1S", ViewCount: 1000, LikeCount: 50, CommentCount: 10},
			},
		},
	}
}

func TestAnalyze_Pipeline(t *testing.T) {
	client := newTestClient()
	channels := newFakeChannelStore()
	videos := newFakeVideoStore()
	svc := NewAnalysisService(client, channels, videos, nil)

	result, err := svc.Analyze(context.Background(), testChannelID)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Channel.ID != testChannelID {
		t.Errorf("channel id = %s, want %s", result.Channel.ID, testChannelID)
	}
	if len(videos.rows) != 2 {
		t.Errorf("persisted videos = %d, want 2", len(videos.rows))
	}
	if len(channels.snapshots) != 1 {
		t.Errorf("snapshot rows = %d, want 1", len(channels.snapshots))
	}
	if result.KPIs.AvgViews != 2500.0 {
		t.Errorf("avgViews = %.2f, want 2500.00", result.KPIs.AvgViews)
	}
	// 500000 views at the default 2.0 cpm.
	if result.KPIs.EstimatedEarnings != 1000.0 {
		t.Errorf("estimatedEarnings = %.2f, want 1000.00", result.KPIs.EstimatedEarnings)
	}
	if result.KPIs.TopVideo == nil || result.KPIs.TopVideo.ID != "v1" {
		t.Errorf("topVideo = %v, want v1", result.KPIs.TopVideo)
	}
	if len(result.Videos) != 2 {
		t.Errorf("videos in result = %d, want 2", len(result.Videos))
	}
	// One snapshot row cannot draw a trend, so the series is synthesized.
	if len(result.Growth) != GrowthTrendDays {
		t.Errorf("growth points = %d, want %d", len(result.Growth), GrowthTrendDays)
	}
	if len(result.Growth) > 0 && !result.Growth[0].Estimated {
		t.Error("synthesized growth should be flagged estimated")
	}
	if v := videos.rows["v1"]; v.Duration != "PT4M13S" {
		t.Errorf("duration = %q, want verbatim PT4M13S", v.Duration)
	}
	want := time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)
	if !videos.rows["v1"].PublishedAt.Equal(want) {
		t.Errorf("publishedAt = %v, want %v", videos.rows["v1"].PublishedAt, want)
	}
}

func TestAnalyze_SameDayIdempotent(t *testing.T) {
	client := newTestClient()
	channels := newFakeChannelStore()
	videos := newFakeVideoStore()
	svc := NewAnalysisService(client, channels, videos, nil)

	if _, err := svc.Analyze(context.Background(), testChannelID); err != nil {
		t.Fatalf("first Analyze failed: %v", err)
	}

	// Counters move between runs; the same-day snapshot must be overwritten,
	// not duplicated.
	client.channels[testChannelID].ViewCount = 600000
	client.channels[testChannelID].SubscriberCount = 11000

	if _, err := svc.Analyze(context.Background(), testChannelID); err != nil {
		t.Fatalf("second Analyze failed: %v", err)
	}

	if len(channels.snapshots) != 1 {
		t.Fatalf("snapshot rows after two same-day runs = %d, want 1", len(channels.snapshots))
	}
	if len(videos.rows) != 2 {
		t.Errorf("video rows after two runs = %d, want 2", len(videos.rows))
	}
	for _, s := range channels.snapshots {
		if s.Views != 600000 {
			t.Errorf("snapshot views = %d, want 600000 (second run wins)", s.Views)
		}
		if s.Subscribers != 11000 {
			t.Errorf("snapshot subscribers = %d, want 11000", s.Subscribers)
		}
	}
}

func TestAnalyze_NotFoundWritesNothing(t *testing.T) {
	client := newTestClient()
	channels := newFakeChannelStore()
	videos := newFakeVideoStore()
	svc := NewAnalysisService(client, channels, videos, nil)

	_, err := svc.Analyze(context.Background(), "UCzzzzzzzzzzzzzzzzzzzz99")
	if !apperr.IsNotFound(err) {
		t.Fatalf("error = %v, want NotFound", err)
	}
	if channels.upserts != 0 {
		t.Errorf("channel upserts = %d, want 0", channels.upserts)
	}
	if len(videos.rows) != 0 {
		t.Errorf("video rows = %d, want 0", len(videos.rows))
	}
}

func TestAnalyze_MalformedTimestampIsUpstream(t *testing.T) {
	client := newTestClient()
	client.videos["UUabcdefghijklmnopqrst12"][0].PublishedAt = "not-a-timestamp"
	svc := NewAnalysisService(client, newFakeChannelStore(), newFakeVideoStore(), nil)

	_, err := svc.Analyze(context.Background(), testChannelID)
	if err == nil {
		t.Fatal("expected error for malformed publish timestamp")
	}
	if apperr.KindOf(err) != apperr.KindUpstream {
		t.Errorf("error kind = %v, want upstream", apperr.KindOf(err))
	}
}

func TestAnalyzeInput_ResolvesSearchFirstCandidate(t *testing.T) {
	client := newTestClient()
	client.candidates = []model.Candidate{
		{ChannelID: testChannelID, Title: "Test Channel", SubscriberCount: 10000, Enriched: true},
		{ChannelID: "UCotherotherotherother12", Title: "Other"},
	}
	svc := NewAnalysisService(client, newFakeChannelStore(), newFakeVideoStore(), nil)

	result, err := svc.AnalyzeInput(context.Background(), "test channel")
	if err != nil {
		t.Fatalf("AnalyzeInput failed: %v", err)
	}
	if result.Channel.ID != testChannelID {
		t.Errorf("resolved channel = %s, want first candidate %s", result.Channel.ID, testChannelID)
	}
	if client.searchCalls != 1 {
		t.Errorf("search calls = %d, want 1", client.searchCalls)
	}
}

func TestCompare(t *testing.T) {
	client := newTestClient()
	svc := NewAnalysisService(client, newFakeChannelStore(), newFakeVideoStore(), nil)

	tests := []struct {
		name    string
		inputs  []string
		wantErr bool
	}{
		{"empty", nil, true},
		{"single input", []string{testChannelID}, true},
		{"blanks filtered then too few", []string{testChannelID, "", ""}, true},
		{"two valid", []string{testChannelID, testChannelID}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.Compare(context.Background(), tt.inputs)
			if tt.wantErr {
				if apperr.KindOf(err) != apperr.KindValidation {
					t.Errorf("error = %v, want validation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compare failed: %v", err)
			}
			if len(results) != 2 {
				t.Errorf("results = %d, want 2", len(results))
			}
		})
	}
}

func TestSuggest_CanonicalIDShortCircuit(t *testing.T) {
	client := newTestClient()
	svc := NewAnalysisService(client, newFakeChannelStore(), newFakeVideoStore(), nil)

	candidates, err := svc.Suggest(context.Background(), testChannelID)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if client.searchCalls != 0 {
		t.Errorf("search calls = %d, want 0 for canonical ID input", client.searchCalls)
	}
	if len(candidates) != 1 || candidates[0].ChannelID != testChannelID {
		t.Errorf("candidates = %v, want single exact match", candidates)
	}
}

func TestComputeKPIs_Empty(t *testing.T) {
	kpis := computeKPIs(nil, 42.0)
	if kpis.AvgViews != 0 || kpis.EngagementRate != 0 {
		t.Errorf("empty video set should zero the averages: %+v", kpis)
	}
	if kpis.EstimatedEarnings != 42.0 {
		t.Errorf("earnings = %.2f, want 42.00", kpis.EstimatedEarnings)
	}
	if kpis.TopVideo != nil {
		t.Errorf("topVideo = %v, want nil", kpis.TopVideo)
	}
}
