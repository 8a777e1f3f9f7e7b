package handler

import (
	"context"

	"opsmonitor/internal/domain"
	"opsmonitor/internal/telemetry"
)

type DashboardComposer interface {
	Compose(ctx context.Context, r telemetry.TimeRange) (*domain.DashboardReport, error)
}
