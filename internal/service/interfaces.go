package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"opsmonitor/internal/domain"
	"opsmonitor/internal/telemetry"
)

// SessionDirectory is the external, fallible source of session data.
type SessionDirectory interface {
	Ping(ctx context.Context) error
	FindActiveSessionsSince(ctx context.Context, cutoff time.Time) ([]domain.Session, error)
}

type MetricSource interface {
	Now() time.Time
	WindowAPI(r telemetry.TimeRange) []telemetry.APIRequestMetric
	WindowDBQuery(r telemetry.TimeRange) []telemetry.DBQueryMetric
}

type ActivityReader interface {
	Read(ctx context.Context, r telemetry.TimeRange, now time.Time) ActivityResult
}

type RateLimitProvider interface {
	Settings() domain.RateLimitSettings
}

type ProcessSampler interface {
	Sample(ctx context.Context) domain.ProcessStats
}
