package metrics

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"opsmonitor/internal/domain"
)

const bytesPerMB = 1024 * 1024

// ProcessSampler reports resource usage of the running process. Fields that
// cannot be read are left at zero and logged at warn level.
type ProcessSampler struct {
	proc    *process.Process
	started time.Time
	logger  *slog.Logger
}

func NewProcessSampler(logger *slog.Logger) *ProcessSampler {
	s := &ProcessSampler{
		started: time.Now(),
		logger:  logger,
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		logger.Warn("process sampler unavailable", slog.String("error", err.Error()))
		return s
	}
	s.proc = proc

	if ms, err := proc.CreateTime(); err == nil && ms > 0 {
		s.started = time.UnixMilli(ms)
	}
	return s
}

func (s *ProcessSampler) Sample(ctx context.Context) domain.ProcessStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := domain.ProcessStats{
		UptimeSeconds: time.Since(s.started).Seconds(),
		HeapAllocMB:   float64(memStats.HeapAlloc) / bytesPerMB,
		Goroutines:    runtime.NumGoroutine(),
	}
	if s.proc == nil {
		return stats
	}

	// Lifetime average; process.Percent would block for a sampling interval.
	cpu, err := s.proc.CPUPercentWithContext(ctx)
	if err != nil {
		s.logger.Warn("failed to read process cpu", slog.String("error", err.Error()))
	} else {
		stats.CPUPercent = cpu
	}

	mem, err := s.proc.MemoryInfoWithContext(ctx)
	if err != nil {
		s.logger.Warn("failed to read process memory", slog.String("error", err.Error()))
	} else {
		stats.MemoryRSSMB = float64(mem.RSS) / bytesPerMB
	}

	return stats
}
