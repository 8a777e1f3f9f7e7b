package domain

type DashboardReport struct {
	TimeRange    string              `json:"timeRange"`
	GeneratedAt  string              `json:"generatedAt"`
	Performance  PerformanceSummary  `json:"performance"`
	APIMetrics   APIMetricsSummary   `json:"apiMetrics"`
	UserActivity UserActivitySummary `json:"userActivity"`
	Errors       ErrorSummary        `json:"errors"`
	RateLimiting RateLimitSummary    `json:"rateLimiting"`
	Database     DatabaseSummary     `json:"database"`
}

// PerformanceSummary carries page-load figures that are derived from API
// latency (x3, capped), not measured in a browser. PageLoadIsEstimate is
// always true until a client-side timing source exists.
type PerformanceSummary struct {
	AverageResponseTime      float64      `json:"averageResponseTime"`
	P95ResponseTime          float64      `json:"p95ResponseTime"`
	EstimatedPageLoadTime    float64      `json:"estimatedPageLoadTime"`
	EstimatedP95PageLoadTime float64      `json:"estimatedP95PageLoadTime"`
	PageLoadIsEstimate       bool         `json:"pageLoadIsEstimate"`
	Process                  ProcessStats `json:"process"`
}

type ProcessStats struct {
	UptimeSeconds float64 `json:"uptimeSeconds"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryRSSMB   float64 `json:"memoryRssMb"`
	HeapAllocMB   float64 `json:"heapAllocMb"`
	Goroutines    int     `json:"goroutines"`
}

type APIMetricsSummary struct {
	TotalRequests       int               `json:"totalRequests"`
	SuccessRequests     int               `json:"successRequests"`
	ErrorRequests       int               `json:"errorRequests"`
	AverageResponseTime float64           `json:"averageResponseTime"`
	SlowestEndpoints    []EndpointLatency `json:"slowestEndpoints"`
}

type EndpointLatency struct {
	Endpoint     string  `json:"endpoint"`
	AverageTime  float64 `json:"averageTime"`
	RequestCount int     `json:"requestCount"`
}

type UserActivitySummary struct {
	ActiveUsers            int     `json:"activeUsers"`
	TotalSessions          int     `json:"totalSessions"`
	AverageSessionDuration float64 `json:"averageSessionDuration"`
}

type ErrorSummary struct {
	TotalErrors int          `json:"totalErrors"`
	ErrorRate   float64      `json:"errorRate"`
	TopErrors   []ErrorGroup `json:"topErrors"`
}

type ErrorGroup struct {
	Message      string `json:"message"`
	Count        int    `json:"count"`
	LastOccurred string `json:"lastOccurred"`
}

type RateLimitSummary struct {
	Config              RateLimitSettings     `json:"config"`
	TotalBlocked        int                   `json:"totalBlocked"`
	TopLimitedEndpoints []RateLimitedEndpoint `json:"topLimitedEndpoints"`
}

type RateLimitSettings struct {
	WindowMs    int64               `json:"windowMs"`
	MaxRequests RateLimitThresholds `json:"maxRequests"`
}

type RateLimitThresholds struct {
	General int `json:"general"`
	Auth    int `json:"auth"`
	Upload  int `json:"upload"`
	Export  int `json:"export"`
}

type RateLimitedEndpoint struct {
	Endpoint string `json:"endpoint"`
	Count    int    `json:"count"`
}

const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

type DatabaseSummary struct {
	Status           string         `json:"status"`
	TotalQueries     int            `json:"totalQueries"`
	AverageQueryTime float64        `json:"averageQueryTime"`
	SlowestQueries   []QueryLatency `json:"slowestQueries"`
}

type QueryLatency struct {
	Query       string  `json:"query"`
	AverageTime float64 `json:"averageTime"`
	MaxTime     float64 `json:"maxTime"`
	Count       int     `json:"count"`
}
