package telemetry

import "time"

type APIRequestMetric struct {
	Timestamp  int64 // epoch ms
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
}

type DBQueryMetric struct {
	Timestamp  int64 // epoch ms
	EntityName string
	Operation  string
	DurationMs float64
}

const (
	OpFind    = "find"
	OpInsert  = "insert"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpUnknown = "unknown"
)

type TimeRange string

const (
	Range1h  TimeRange = "1h"
	Range24h TimeRange = "24h"
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"

	DefaultTimeRange = Range24h
)

var rangeWindows = map[TimeRange]time.Duration{
	Range1h:  time.Hour,
	Range24h: 24 * time.Hour,
	Range7d:  7 * 24 * time.Hour,
	Range30d: 30 * 24 * time.Hour,
}

// ParseTimeRange never fails: anything outside the four known values maps to
// DefaultTimeRange.
func ParseTimeRange(s string) TimeRange {
	r := TimeRange(s)
	if _, ok := rangeWindows[r]; ok {
		return r
	}
	return DefaultTimeRange
}

func (r TimeRange) Window() time.Duration {
	if w, ok := rangeWindows[r]; ok {
		return w
	}
	return rangeWindows[DefaultTimeRange]
}

// Since returns the inclusive lower bound of the window ending at now.
func (r TimeRange) Since(now time.Time) time.Time {
	return now.Add(-r.Window())
}

func (r TimeRange) String() string {
	return string(ParseTimeRange(string(r)))
}
