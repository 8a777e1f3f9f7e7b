// Package querytrace times data-store calls and reports them as
// telemetry.DBQueryMetric. It offers a pgx QueryTracer, a go-redis Hook and
// Track for wrapping any other call site by hand.
package querytrace

import (
	"time"

	"opsmonitor/internal/telemetry"
)

type QueryRecorder interface {
	RecordDBQuery(m telemetry.DBQueryMetric)
}

// Track times fn and records it under entity and operation. The error from fn
// is returned unchanged; failed queries are recorded too.
func Track(rec QueryRecorder, entity, operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	record(rec, start, entity, operation)
	return err
}

func record(rec QueryRecorder, start time.Time, entity, operation string) {
	if entity == "" {
		entity = telemetry.OpUnknown
	}
	if operation == "" {
		operation = telemetry.OpUnknown
	}
	rec.RecordDBQuery(telemetry.DBQueryMetric{
		Timestamp:  time.Now().UnixMilli(),
		EntityName: entity,
		Operation:  operation,
		DurationMs: durationMs(time.Since(start)),
	})
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
