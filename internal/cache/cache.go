// Package cache memoizes path normalization for the HTTP telemetry
// middleware.
package cache

import (
	"github.com/dgraph-io/ristretto"

	"opsmonitor/internal/telemetry"
)

// MaxPathLen is the longest raw path that is memoized. Longer paths are
// almost always scanner noise; caching them would only evict real routes.
const MaxPathLen = 512

// PathCache maps raw request paths to their normalized form. Paths that
// normalize to themselves are stored as an empty value, so an identity entry
// costs only the raw path's bytes. maxSizePow2 bounds total bytes, not entries.
type PathCache struct {
	cache *ristretto.Cache
}

var _ telemetry.PathMemo = (*PathCache)(nil)

func New(maxSizePow2 int) (*PathCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/50) // ~50 bytes per path pair estimate

	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &PathCache{cache: c}, nil
}

func (c *PathCache) Get(raw string) (string, bool) {
	val, found := c.cache.Get(raw)
	if !found {
		return "", false
	}
	normalized, _ := val.(string)
	if normalized == "" {
		return raw, true
	}
	return normalized, true
}

func (c *PathCache) Set(raw, normalized string) {
	if raw == "" || len(raw) > MaxPathLen {
		return
	}
	if normalized == raw {
		c.cache.Set(raw, "", entryCost(raw, ""))
		return
	}
	c.cache.Set(raw, normalized, entryCost(raw, normalized))
}

func entryCost(raw, stored string) int64 {
	return int64(len(raw) + len(stored))
}

// Wait blocks until buffered Sets are applied.
func (c *PathCache) Wait() {
	c.cache.Wait()
}

func (c *PathCache) Close() {
	c.cache.Close()
}

func (c *PathCache) Stats() (hits, misses uint64, ratio float64) {
	m := c.cache.Metrics
	return m.Hits(), m.Misses(), m.Ratio()
}
