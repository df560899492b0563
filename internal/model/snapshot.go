package model

import "time"

// DailyChannelSnapshot records a channel's cumulative counters as of one UTC
// calendar date. At most one row exists per (channel, date); re-analyzing on
// the same date overwrites it.
type DailyChannelSnapshot struct {
	ChannelID   string    `json:"channelId"`
	Date        time.Time `json:"date"`
	Subscribers int64     `json:"subscribers"`
	Views       int64     `json:"views"`
	VideoCount  int64     `json:"videoCount"`
	EarningsEst float64   `json:"earningsEst"`
}

// GrowthPoint is one day of the growth trend series. Estimated marks points
// synthesized for display because no persisted history exists yet; callers
// must be able to tell them apart from real snapshots.
type GrowthPoint struct {
	Date        string `json:"date"`
	Views       int64  `json:"views"`
	Subscribers int64  `json:"subscribers"`
	Estimated   bool   `json:"estimated"`
}

// MonthlyReportRow aggregates snapshot history for one calendar month.
// Counters are cumulative upstream, so a month's totals are its latest
// snapshot's readings.
type MonthlyReportRow struct {
	Month            string `json:"month"`
	TotalViews       int64  `json:"totalViews"`
	TotalSubscribers int64  `json:"totalSubscribers"`
}
