package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"opsmonitor/internal/domain"
	"opsmonitor/internal/telemetry"
)

var ErrDirectoryUnavailable = errors.New("session directory unavailable")

const defaultDirectoryTimeout = 2 * time.Second

// ActivityResult is the outcome of a best-effort directory read. When Err is
// set, Activity is the zero value. Connected reports whether the directory
// answered a ping and drives the dashboard's database status.
type ActivityResult struct {
	Activity  domain.UserActivitySummary
	Connected bool
	Err       error
}

func (r ActivityResult) Degraded() bool {
	return r.Err != nil
}

type SessionActivity struct {
	dir     SessionDirectory
	timeout time.Duration
	logger  *slog.Logger
}

func NewSessionActivity(dir SessionDirectory, timeout time.Duration, logger *slog.Logger) *SessionActivity {
	if timeout <= 0 {
		timeout = defaultDirectoryTimeout
	}
	return &SessionActivity{
		dir:     dir,
		timeout: timeout,
		logger:  logger,
	}
}

// Read never returns an error to the caller: failures are logged and folded
// into a zero-valued ActivityResult.
func (a *SessionActivity) Read(ctx context.Context, r telemetry.TimeRange, now time.Time) ActivityResult {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if err := a.dir.Ping(ctx); err != nil {
		return a.degrade(r, false, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err))
	}

	sessions, err := a.dir.FindActiveSessionsSince(ctx, r.Since(now))
	if err != nil {
		return a.degrade(r, true, fmt.Errorf("failed to find active sessions: %w", err))
	}

	return ActivityResult{
		Activity:  summarizeSessions(sessions),
		Connected: true,
	}
}

func (a *SessionActivity) degrade(r telemetry.TimeRange, connected bool, err error) ActivityResult {
	a.logger.Warn("session activity unavailable, reporting zero",
		slog.String("time_range", r.String()),
		slog.Bool("connected", connected),
		slog.String("error", err.Error()))
	return ActivityResult{Connected: connected, Err: err}
}

func summarizeSessions(sessions []domain.Session) domain.UserActivitySummary {
	users := make(map[string]struct{}, len(sessions))
	durations := make([]float64, 0, len(sessions))
	for _, s := range sessions {
		users[s.UserID] = struct{}{}
		d := s.LastActivity.Sub(s.CreatedAt).Seconds()
		durations = append(durations, max(0, d))
	}
	return domain.UserActivitySummary{
		ActiveUsers:            len(users),
		TotalSessions:          len(sessions),
		AverageSessionDuration: telemetry.Mean(durations),
	}
}
