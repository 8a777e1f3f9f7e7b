package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsmonitor/internal/domain"
	"opsmonitor/internal/querytrace"
	"opsmonitor/internal/repository"
	"opsmonitor/internal/service"
	"opsmonitor/internal/telemetry"
)

func TestCompose_RedisDirectoryReportsOnlyDataQueries(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store := telemetry.NewStore(1000)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	rdb.AddHook(querytrace.NewRedisHook(store))

	dir := repository.NewRedisSessionStore(rdb, "sess")
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, dir.Save(ctx, domain.Session{
		ID:           "s1",
		UserID:       "alice",
		CreatedAt:    now.Add(-10 * time.Minute),
		LastActivity: now,
		Active:       true,
	}))

	activity := service.NewSessionActivity(dir, time.Second, testLogger())
	svc := service.NewDashboardService(store, activity, testLimits, nil, testLogger())

	var report *domain.DashboardReport
	for i := 0; i < 3; i++ {
		report, err = svc.Compose(ctx, telemetry.Range1h)
		require.NoError(t, err)
	}

	assert.Equal(t, domain.DatabaseConnected, report.Database.Status)
	assert.Equal(t, 1, report.UserActivity.TotalSessions)

	names := make([]string, 0, len(report.Database.SlowestQueries))
	total := 0
	for _, q := range report.Database.SlowestQueries {
		assert.NotContains(t, q.Query, telemetry.OpUnknown)
		names = append(names, q.Query)
		total += q.Count
	}
	assert.ElementsMatch(t, []string{"sess.update", "sess.find"}, names)
	assert.Equal(t, report.Database.TotalQueries, total)
}
