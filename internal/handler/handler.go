package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"opsmonitor/internal/telemetry"
)

var (
	errDashboardFailed = map[string]string{"error": "failed to load dashboard metrics"}
	respHealthOK       = map[string]string{"status": "ok"}
)

type Handler struct {
	dashboard DashboardComposer
	logger    *slog.Logger
}

func New(dashboard DashboardComposer, logger *slog.Logger) *Handler {
	return &Handler{
		dashboard: dashboard,
		logger:    logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/monitoring/dashboard", h.Dashboard)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

// Dashboard serves GET /api/v1/monitoring/dashboard?timeRange=1h|24h|7d|30d.
// Unknown ranges fall back to 24h. Failure details are logged, not returned.
func (h *Handler) Dashboard(c echo.Context) (err error) {
	r := telemetry.ParseTimeRange(c.QueryParam("timeRange"))

	defer func() {
		if p := recover(); p != nil {
			h.logger.Error("dashboard panicked",
				slog.String("time_range", r.String()),
				slog.String("panic", fmt.Sprint(p)))
			err = c.JSON(http.StatusInternalServerError, errDashboardFailed)
		}
	}()

	report, err := h.dashboard.Compose(c.Request().Context(), r)
	if err != nil {
		h.logger.Error("failed to compose dashboard",
			slog.String("time_range", r.String()),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errDashboardFailed)
	}

	return c.JSON(http.StatusOK, report)
}
