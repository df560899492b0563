package model

// KPISet holds the headline figures of one analysis.
type KPISet struct {
	AvgViews          float64       `json:"avgViews"`
	EngagementRate    float64       `json:"engagementRate"`
	EstimatedEarnings float64       `json:"estimatedEarnings"`
	TopVideo          *VideoSummary `json:"topVideo"`
}

// SegmentEntry is one video inside a segment, annotated with its own
// engagement rate.
type SegmentEntry struct {
	Title          string  `json:"title"`
	PublishedAt    string  `json:"publishedAt,omitempty"`
	Views          int64   `json:"views"`
	Likes          int64   `json:"likes,omitempty"`
	Comments       int64   `json:"comments,omitempty"`
	EngagementRate float64 `json:"engagementRate"`
}

// VideoSegments groups a channel's uploads into display segments.
type VideoSegments struct {
	TopViews      []SegmentEntry `json:"topViews"`
	TopEngagement []SegmentEntry `json:"topEngagement"`
}

// HeatmapCell is the average view count for uploads published in one
// (weekday, hour) bucket.
type HeatmapCell struct {
	Day   string  `json:"day"`
	Hour  int     `json:"hour"`
	Score float64 `json:"score"`
}

// UploadStrategy is the upload-time heuristic output. BestDay is "N/A" when
// the channel has no analyzable uploads.
type UploadStrategy struct {
	Heatmap []HeatmapCell `json:"heatmap"`
	BestDay string        `json:"bestDay"`
}

// AnalysisResult is the full payload returned for one channel analysis.
// Every float in it is finite by the time it is serialized.
type AnalysisResult struct {
	Channel  ChannelSummary `json:"channel"`
	KPIs     KPISet         `json:"kpis"`
	Segments VideoSegments  `json:"segments"`
	Growth   []GrowthPoint  `json:"growth"`
	Strategy UploadStrategy `json:"strategy"`
	Videos   []VideoSummary `json:"videos"`
}
