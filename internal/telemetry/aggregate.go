package telemetry

import (
	"cmp"
	"fmt"
	"net/http"
	"slices"
	"time"

	"opsmonitor/internal/domain"
)

const (
	endpointLimit    = 8
	queryLimit       = 8
	errorLimit       = 10
	rateLimitedLimit = 8
)

// isoMillis matches the ISO-8601 form browsers produce (UTC, millisecond precision).
const isoMillis = "2006-01-02T15:04:05.000Z"

// groups keeps first-seen key order so stable sorts break ties deterministically.
type groups[G any] struct {
	order []string
	index map[string]*G
}

func newGroups[G any]() *groups[G] {
	return &groups[G]{index: make(map[string]*G)}
}

func (g *groups[G]) get(key string, init func() *G) *G {
	if v, ok := g.index[key]; ok {
		return v
	}
	v := init()
	g.index[key] = v
	g.order = append(g.order, key)
	return v
}

func (g *groups[G]) each(fn func(key string, v *G)) {
	for _, k := range g.order {
		fn(k, g.index[k])
	}
}

func endpointKey(method, path string) string {
	return method + " " + path
}

func IsError(m APIRequestMetric) bool {
	return m.StatusCode >= http.StatusBadRequest
}

func IsRateLimited(m APIRequestMetric) bool {
	return m.StatusCode == http.StatusTooManyRequests
}

func topN[T any](items []T, n int, less func(a, b T) int) []T {
	slices.SortStableFunc(items, less)
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// SlowestEndpoints groups by method and path and ranks by mean latency.
func SlowestEndpoints(metrics []APIRequestMetric) []domain.EndpointLatency {
	type acc struct{ durations []float64 }
	g := newGroups[acc]()
	for _, m := range metrics {
		a := g.get(endpointKey(m.Method, m.Path), func() *acc { return &acc{} })
		a.durations = append(a.durations, m.DurationMs)
	}

	out := make([]domain.EndpointLatency, 0, len(g.order))
	g.each(func(key string, a *acc) {
		out = append(out, domain.EndpointLatency{
			Endpoint:     key,
			AverageTime:  Mean(a.durations),
			RequestCount: len(a.durations),
		})
	})
	return topN(out, endpointLimit, func(a, b domain.EndpointLatency) int {
		return cmp.Compare(b.AverageTime, a.AverageTime)
	})
}

// SlowestQueries groups by "entity.operation" and ranks by mean latency.
func SlowestQueries(metrics []DBQueryMetric) []domain.QueryLatency {
	type acc struct{ durations []float64 }
	g := newGroups[acc]()
	for _, m := range metrics {
		a := g.get(m.EntityName+"."+m.Operation, func() *acc { return &acc{} })
		a.durations = append(a.durations, m.DurationMs)
	}

	out := make([]domain.QueryLatency, 0, len(g.order))
	g.each(func(key string, a *acc) {
		out = append(out, domain.QueryLatency{
			Query:       key,
			AverageTime: Mean(a.durations),
			MaxTime:     Max(a.durations),
			Count:       len(a.durations),
		})
	})
	return topN(out, queryLimit, func(a, b domain.QueryLatency) int {
		return cmp.Compare(b.AverageTime, a.AverageTime)
	})
}

// TopErrorGroups ranks "METHOD path -> status" groups of 4xx/5xx responses by count.
func TopErrorGroups(metrics []APIRequestMetric) []domain.ErrorGroup {
	type acc struct {
		count int
		last  int64
	}
	g := newGroups[acc]()
	for _, m := range metrics {
		if !IsError(m) {
			continue
		}
		key := fmt.Sprintf("%s -> %d", endpointKey(m.Method, m.Path), m.StatusCode)
		a := g.get(key, func() *acc { return &acc{last: m.Timestamp} })
		a.count++
		a.last = max(a.last, m.Timestamp)
	}

	out := make([]domain.ErrorGroup, 0, len(g.order))
	g.each(func(key string, a *acc) {
		out = append(out, domain.ErrorGroup{
			Message:      key,
			Count:        a.count,
			LastOccurred: time.UnixMilli(a.last).UTC().Format(isoMillis),
		})
	})
	return topN(out, errorLimit, func(a, b domain.ErrorGroup) int {
		return cmp.Compare(b.Count, a.Count)
	})
}

// TopRateLimited counts 429 responses per endpoint. Other 4xx codes are ignored.
func TopRateLimited(metrics []APIRequestMetric) []domain.RateLimitedEndpoint {
	type acc struct{ count int }
	g := newGroups[acc]()
	for _, m := range metrics {
		if !IsRateLimited(m) {
			continue
		}
		g.get(endpointKey(m.Method, m.Path), func() *acc { return &acc{} }).count++
	}

	out := make([]domain.RateLimitedEndpoint, 0, len(g.order))
	g.each(func(key string, a *acc) {
		out = append(out, domain.RateLimitedEndpoint{Endpoint: key, Count: a.count})
	})
	return topN(out, rateLimitedLimit, func(a, b domain.RateLimitedEndpoint) int {
		return cmp.Compare(b.Count, a.Count)
	})
}
