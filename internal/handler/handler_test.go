package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"opsmonitor/internal/domain"
	"opsmonitor/internal/handler"
	"opsmonitor/internal/handler/mocks"
	"opsmonitor/internal/telemetry"
)

func newTestHandler(t *testing.T) (*handler.Handler, *mocks.MockDashboardComposer) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	composer := mocks.NewMockDashboardComposer(t)
	return handler.New(composer, logger), composer
}

func serve(h *handler.Handler, target string) *httptest.ResponseRecorder {
	e := echo.New()
	h.Register(e)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, "/api/v1/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDashboard_Success(t *testing.T) {
	h, composer := newTestHandler(t)

	composer.EXPECT().Compose(mock.Anything, telemetry.Range7d).Return(&domain.DashboardReport{
		TimeRange: "7d",
		APIMetrics: domain.APIMetricsSummary{
			TotalRequests: 3,
			SlowestEndpoints: []domain.EndpointLatency{
				{Endpoint: "GET /api/projects/:id", AverageTime: 120, RequestCount: 3},
			},
		},
		Database: domain.DatabaseSummary{Status: domain.DatabaseConnected},
	}, nil)

	rec := serve(h, "/api/v1/monitoring/dashboard?timeRange=7d")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "7d", body["timeRange"])

	api := body["apiMetrics"].(map[string]any)
	assert.EqualValues(t, 3, api["totalRequests"])
	endpoints := api["slowestEndpoints"].([]any)
	require.Len(t, endpoints, 1)
	assert.Equal(t, "GET /api/projects/:id", endpoints[0].(map[string]any)["endpoint"])

	assert.Equal(t, "connected", body["database"].(map[string]any)["status"])
}

func TestDashboard_TimeRangeParsing(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected telemetry.TimeRange
	}{
		{name: "1h", target: "/api/v1/monitoring/dashboard?timeRange=1h", expected: telemetry.Range1h},
		{name: "30d", target: "/api/v1/monitoring/dashboard?timeRange=30d", expected: telemetry.Range30d},
		{name: "missing defaults to 24h", target: "/api/v1/monitoring/dashboard", expected: telemetry.Range24h},
		{name: "unknown defaults to 24h", target: "/api/v1/monitoring/dashboard?timeRange=2w", expected: telemetry.Range24h},
		{name: "case sensitive", target: "/api/v1/monitoring/dashboard?timeRange=1H", expected: telemetry.Range24h},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, composer := newTestHandler(t)
			composer.EXPECT().Compose(mock.Anything, tt.expected).
				Return(&domain.DashboardReport{TimeRange: tt.expected.String()}, nil).Once()

			rec := serve(h, tt.target)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestDashboard_ComposeError(t *testing.T) {
	h, composer := newTestHandler(t)

	composer.EXPECT().Compose(mock.Anything, telemetry.Range24h).
		Return(nil, errors.New("pq: relation \"sessions\" does not exist"))

	rec := serve(h, "/api/v1/monitoring/dashboard")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to load dashboard metrics"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "sessions")
}

func TestDashboard_PanicReturnsGenericError(t *testing.T) {
	h, composer := newTestHandler(t)

	composer.EXPECT().Compose(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ telemetry.TimeRange) (*domain.DashboardReport, error) {
			panic("index out of range")
		})

	rec := serve(h, "/api/v1/monitoring/dashboard?timeRange=1h")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to load dashboard metrics"}`, rec.Body.String())
}

func TestDashboard_DirectCall(t *testing.T) {
	h, composer := newTestHandler(t)
	composer.EXPECT().Compose(mock.Anything, telemetry.Range1h).
		Return(&domain.DashboardReport{TimeRange: "1h"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/dashboard?timeRange=1h", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Dashboard(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"timeRange":"1h"`)
}
