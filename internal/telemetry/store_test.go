package telemetry_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsmonitor/internal/telemetry"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func TestBuffer_CapacityInvariant(t *testing.T) {
	const capacity = 100
	const extra = 37

	b := telemetry.NewBuffer[int](capacity)
	for i := 0; i < capacity+extra; i++ {
		b.Append(i)
		require.LessOrEqual(t, b.Len(), capacity)
	}

	got := b.Snapshot()
	require.Len(t, got, capacity)
	for i, v := range got {
		assert.Equal(t, extra+i, v)
	}

	appended, evicted := b.Counters()
	assert.Equal(t, uint64(capacity+extra), appended)
	assert.Equal(t, uint64(extra), evicted)
}

func TestBuffer_DefaultCapacity(t *testing.T) {
	b := telemetry.NewBuffer[int](0)
	assert.Equal(t, telemetry.DefaultMaxCapacity, b.Capacity())
}

func TestBuffer_FilterPreservesOrder(t *testing.T) {
	b := telemetry.NewBuffer[int](10)
	for _, v := range []int{5, 2, 8, 1, 9} {
		b.Append(v)
	}
	assert.Equal(t, []int{5, 8, 9}, b.Filter(func(v int) bool { return v >= 5 }))
	assert.Empty(t, b.Filter(func(int) bool { return false }))
}

func TestStore_WindowAPI(t *testing.T) {
	s := telemetry.NewStore(100, telemetry.WithClock(fixedClock))

	s.RecordAPI(telemetry.APIRequestMetric{Timestamp: testNow.Add(-2 * time.Hour).UnixMilli(), Method: "GET", Path: "/old"})
	s.RecordAPI(telemetry.APIRequestMetric{Timestamp: testNow.Add(-30 * time.Minute).UnixMilli(), Method: "GET", Path: "/mid"})
	s.RecordAPI(telemetry.APIRequestMetric{Timestamp: testNow.Add(-5 * time.Minute).UnixMilli(), Method: "GET", Path: "/new"})

	got := s.WindowAPI(telemetry.Range1h)
	require.Len(t, got, 2)
	assert.Equal(t, "/mid", got[0].Path)
	assert.Equal(t, "/new", got[1].Path)

	assert.Len(t, s.WindowAPI(telemetry.Range24h), 3)
}

func TestStore_WindowBoundaryIsInclusive(t *testing.T) {
	s := telemetry.NewStore(100, telemetry.WithClock(fixedClock))
	s.RecordDBQuery(telemetry.DBQueryMetric{Timestamp: testNow.Add(-time.Hour).UnixMilli(), EntityName: "Project", Operation: "find"})
	s.RecordDBQuery(telemetry.DBQueryMetric{Timestamp: testNow.Add(-time.Hour).UnixMilli() - 1, EntityName: "Project", Operation: "find"})

	assert.Len(t, s.WindowDBQuery(telemetry.Range1h), 1)
}

func TestStore_StampsZeroTimestamp(t *testing.T) {
	s := telemetry.NewStore(10, telemetry.WithClock(fixedClock))
	s.RecordAPI(telemetry.APIRequestMetric{Method: "GET", Path: "/x"})
	s.RecordDBQuery(telemetry.DBQueryMetric{EntityName: "User", Operation: "find"})

	api := s.WindowAPI(telemetry.Range1h)
	require.Len(t, api, 1)
	assert.Equal(t, testNow.UnixMilli(), api[0].Timestamp)

	db := s.WindowDBQuery(telemetry.Range1h)
	require.Len(t, db, 1)
	assert.Equal(t, testNow.UnixMilli(), db[0].Timestamp)
}

func TestStore_AcceptsNegativeDuration(t *testing.T) {
	s := telemetry.NewStore(10, telemetry.WithClock(fixedClock))
	s.RecordAPI(telemetry.APIRequestMetric{Method: "GET", Path: "/x", DurationMs: -5})

	got := s.WindowAPI(telemetry.Range1h)
	require.Len(t, got, 1)
	assert.Equal(t, -5.0, got[0].DurationMs)
}

func TestStore_CapacityPerBuffer(t *testing.T) {
	s := telemetry.NewStore(3, telemetry.WithClock(fixedClock))
	for i := 0; i < 5; i++ {
		s.RecordAPI(telemetry.APIRequestMetric{StatusCode: 200 + i})
	}
	s.RecordDBQuery(telemetry.DBQueryMetric{EntityName: "User"})

	stats := s.Stats()
	assert.Equal(t, 3, stats.API.Len)
	assert.Equal(t, uint64(2), stats.API.Evicted)
	assert.Equal(t, uint64(5), stats.API.Appended)
	assert.Equal(t, 1, stats.DBQuery.Len)
	assert.Equal(t, uint64(0), stats.DBQuery.Evicted)

	got := s.WindowAPI(telemetry.Range1h)
	require.Len(t, got, 3)
	assert.Equal(t, []int{202, 203, 204}, []int{got[0].StatusCode, got[1].StatusCode, got[2].StatusCode})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := telemetry.NewStore(500)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s.RecordAPI(telemetry.APIRequestMetric{Method: "GET", Path: "/x", StatusCode: 200})
				_ = s.WindowAPI(telemetry.Range1h)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s.RecordDBQuery(telemetry.DBQueryMetric{EntityName: "User", Operation: "find"})
				_ = s.WindowDBQuery(telemetry.Range1h)
			}
		}()
	}
	wg.Wait()

	stats := s.Stats()
	assert.Equal(t, 500, stats.API.Len)
	assert.Equal(t, 500, stats.DBQuery.Len)
	assert.Equal(t, uint64(1600), stats.API.Appended)
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		in   string
		want telemetry.TimeRange
		win  time.Duration
	}{
		{"1h", telemetry.Range1h, time.Hour},
		{"24h", telemetry.Range24h, 24 * time.Hour},
		{"7d", telemetry.Range7d, 7 * 24 * time.Hour},
		{"30d", telemetry.Range30d, 30 * 24 * time.Hour},
		{"", telemetry.Range24h, 24 * time.Hour},
		{"2h", telemetry.Range24h, 24 * time.Hour},
		{"1H", telemetry.Range24h, 24 * time.Hour},
		{"'; drop table", telemetry.Range24h, 24 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := telemetry.ParseTimeRange(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.win, got.Window())
		})
	}
}
