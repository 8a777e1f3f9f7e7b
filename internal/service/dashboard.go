package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"opsmonitor/internal/domain"
	"opsmonitor/internal/telemetry"
)

// Page-load figures are a proxy: no client-side timing is collected, so they
// are API latency times three, capped.
const (
	pageLoadFactor   = 3
	pageLoadAvgCapMs = 5000
	pageLoadP95CapMs = 8000
)

type DashboardService struct {
	store    MetricSource
	activity ActivityReader
	limits   RateLimitProvider
	process  ProcessSampler
	logger   *slog.Logger
}

func NewDashboardService(
	store MetricSource,
	activity ActivityReader,
	limits RateLimitProvider,
	process ProcessSampler,
	logger *slog.Logger,
) *DashboardService {
	return &DashboardService{
		store:    store,
		activity: activity,
		limits:   limits,
		process:  process,
		logger:   logger,
	}
}

// Compose builds a fresh report for r. The session directory is consulted
// best-effort; the only error is a cancelled ctx.
func (s *DashboardService) Compose(ctx context.Context, r telemetry.TimeRange) (*domain.DashboardReport, error) {
	now := s.store.Now()
	apiMetrics := s.store.WindowAPI(r)
	dbMetrics := s.store.WindowDBQuery(r)

	apiDurations := make([]float64, len(apiMetrics))
	var errorRequests, blocked int
	for i, m := range apiMetrics {
		apiDurations[i] = m.DurationMs
		if telemetry.IsError(m) {
			errorRequests++
		}
		if telemetry.IsRateLimited(m) {
			blocked++
		}
	}
	dbDurations := make([]float64, len(dbMetrics))
	for i, m := range dbMetrics {
		dbDurations[i] = m.DurationMs
	}

	total := len(apiMetrics)
	avgAPI := telemetry.Mean(apiDurations)
	p95API := telemetry.Percentile95(apiDurations)

	activity := s.activity.Read(ctx, r, now)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dashboard compose aborted: %w", err)
	}

	report := &domain.DashboardReport{
		TimeRange:   r.String(),
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Performance: domain.PerformanceSummary{
			AverageResponseTime:      avgAPI,
			P95ResponseTime:          p95API,
			EstimatedPageLoadTime:    min(pageLoadAvgCapMs, avgAPI*pageLoadFactor),
			EstimatedP95PageLoadTime: min(pageLoadP95CapMs, p95API*pageLoadFactor),
			PageLoadIsEstimate:       true,
			Process:                  s.sampleProcess(ctx),
		},
		APIMetrics: domain.APIMetricsSummary{
			TotalRequests:       total,
			SuccessRequests:     total - errorRequests,
			ErrorRequests:       errorRequests,
			AverageResponseTime: avgAPI,
			SlowestEndpoints:    telemetry.SlowestEndpoints(apiMetrics),
		},
		UserActivity: activity.Activity,
		Errors: domain.ErrorSummary{
			TotalErrors: errorRequests,
			ErrorRate:   percent(errorRequests, total),
			TopErrors:   telemetry.TopErrorGroups(apiMetrics),
		},
		RateLimiting: domain.RateLimitSummary{
			Config:              s.limits.Settings(),
			TotalBlocked:        blocked,
			TopLimitedEndpoints: telemetry.TopRateLimited(apiMetrics),
		},
		Database: domain.DatabaseSummary{
			Status:           databaseStatus(activity.Connected),
			TotalQueries:     len(dbMetrics),
			AverageQueryTime: telemetry.Mean(dbDurations),
			SlowestQueries:   telemetry.SlowestQueries(dbMetrics),
		},
	}

	s.logger.Debug("dashboard composed",
		slog.String("time_range", report.TimeRange),
		slog.Int("requests", total),
		slog.Int("queries", len(dbMetrics)),
		slog.Bool("sessions_degraded", activity.Degraded()))

	return report, nil
}

func (s *DashboardService) sampleProcess(ctx context.Context) domain.ProcessStats {
	if s.process == nil {
		return domain.ProcessStats{}
	}
	return s.process.Sample(ctx)
}

func databaseStatus(connected bool) string {
	if connected {
		return domain.DatabaseConnected
	}
	return domain.DatabaseDisconnected
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
