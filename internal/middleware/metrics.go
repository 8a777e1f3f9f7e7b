package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"opsmonitor/internal/telemetry"
)

type HTTPRecorder interface {
	RecordAPI(m telemetry.APIRequestMetric)
}

type PathNormalizer interface {
	Normalize(raw string) string
}

// Metrics records one APIRequestMetric per request once the response is
// final, stamped with the completion time. Errors returned by the chain are handed to the echo error handler
// here, so the recorded status is the one the client sees. Requests for "/"
// and for any of excluded are not recorded.
func Metrics(recorder HTTPRecorder, normalizer PathNormalizer, excluded []string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(excluded)+1)
	skip["/"] = struct{}{}
	for _, p := range excluded {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			raw := c.Request().URL.Path
			if _, ok := skip[raw]; ok {
				return nil
			}

			end := time.Now()
			recorder.RecordAPI(telemetry.APIRequestMetric{
				Timestamp:  end.UnixMilli(),
				Method:     c.Request().Method,
				Path:       normalizer.Normalize(raw),
				StatusCode: c.Response().Status,
				DurationMs: float64(end.Sub(start).Microseconds()) / 1000.0,
			})

			return nil
		}
	}
}
