package middleware

import (
	"crypto/subtle"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"opsmonitor/internal/config"
)

// Category selects which threshold of the rate-limit policy applies.
type Category string

const (
	CategoryGeneral Category = "general"
	CategoryAuth    Category = "auth"
	CategoryUpload  Category = "upload"
	CategoryExport  Category = "export"
)

type rateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

var rateLimiterInternalErr = map[string]string{
	"error": "internal server error",
}

const bypassHeader = "X-Rate-Limit-Bypass"

// RateLimit allows the category's max requests per client IP in every
// window. Tokens refill evenly over the window and the full max is available
// as burst. Denied requests get 429, which the telemetry layer counts as
// rate limited.
func RateLimit(cfg *config.RateLimitConfig, category Category, logger *slog.Logger) echo.MiddlewareFunc {
	limit := categoryMax(cfg, category)
	window := cfg.Window()

	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(limit) / window.Seconds()),
			Burst:     limit,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	retryAfter := retryAfterSeconds(window, limit)
	denied := rateLimitResponse{Error: "rate limit exceeded", RetryAfter: retryAfter}
	retryAfterHeader := strconv.Itoa(retryAfter)

	secret := []byte(cfg.BypassSecret)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if cfg.BypassSecret == "" {
				return false
			}
			provided := c.Request().Header.Get(bypassHeader)
			return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return string(category) + ":" + c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("rate limit exceeded",
				slog.String("category", string(category)),
				slog.String("client", identifier),
				slog.String("path", c.Request().URL.Path),
			)
			c.Response().Header().Set("Retry-After", retryAfterHeader)
			return c.JSON(http.StatusTooManyRequests, denied)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, rateLimiterInternalErr)
		},
	})
}

func categoryMax(cfg *config.RateLimitConfig, category Category) int {
	var n int
	switch category {
	case CategoryAuth:
		n = cfg.AuthMax
	case CategoryUpload:
		n = cfg.UploadMax
	case CategoryExport:
		n = cfg.ExportMax
	default:
		n = cfg.GeneralMax
	}
	return max(n, 1)
}

func retryAfterSeconds(window time.Duration, limit int) int {
	return max(1, int(math.Ceil(window.Seconds()/float64(limit))))
}
