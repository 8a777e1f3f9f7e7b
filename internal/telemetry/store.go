package telemetry

import "time"

// Store owns the API and data-store metric buffers. Each buffer has its own
// lock, so API writers never contend with query writers.
type Store struct {
	api   *Buffer[APIRequestMetric]
	db    *Buffer[DBQueryMetric]
	clock func() time.Time
}

type StoreOption func(*Store)

func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) {
		s.clock = clock
	}
}

func NewStore(capacity int, opts ...StoreOption) *Store {
	s := &Store{
		api:   NewBuffer[APIRequestMetric](capacity),
		db:    NewBuffer[DBQueryMetric](capacity),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Now() time.Time {
	return s.clock()
}

// RecordAPI stores m as given; a zero Timestamp is stamped with the store clock.
func (s *Store) RecordAPI(m APIRequestMetric) {
	if m.Timestamp == 0 {
		m.Timestamp = s.clock().UnixMilli()
	}
	s.api.Append(m)
}

func (s *Store) RecordDBQuery(m DBQueryMetric) {
	if m.Timestamp == 0 {
		m.Timestamp = s.clock().UnixMilli()
	}
	s.db.Append(m)
}

func (s *Store) WindowAPI(r TimeRange) []APIRequestMetric {
	since := r.Since(s.clock()).UnixMilli()
	return s.api.Filter(func(m APIRequestMetric) bool {
		return m.Timestamp >= since
	})
}

func (s *Store) WindowDBQuery(r TimeRange) []DBQueryMetric {
	since := r.Since(s.clock()).UnixMilli()
	return s.db.Filter(func(m DBQueryMetric) bool {
		return m.Timestamp >= since
	})
}

type BufferStats struct {
	Len      int
	Capacity int
	Appended uint64
	Evicted  uint64
}

type StoreStats struct {
	API     BufferStats
	DBQuery BufferStats
}

func (s *Store) Stats() StoreStats {
	return StoreStats{
		API:     bufferStats(s.api),
		DBQuery: bufferStats(s.db),
	}
}

func bufferStats[T any](b *Buffer[T]) BufferStats {
	appended, evicted := b.Counters()
	return BufferStats{
		Len:      b.Len(),
		Capacity: b.Capacity(),
		Appended: appended,
		Evicted:  evicted,
	}
}
