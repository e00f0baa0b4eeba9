package health

import (
	"context"
	"time"

	"mumanager-backend/internal/cache"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pingTimeout = 2 * time.Second

type HealthChecker struct {
	db *pgxpool.Pool
}

// Report is the readiness payload. Postgres is required; the Redis auth
// cache is optional, so a missing cache degrades the report without
// failing it.
type Report struct {
	Status   string          `json:"status"`
	Database ComponentHealth `json:"database"`
	Cache    ComponentHealth `json:"cache"`
}

type ComponentHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(db *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{db: db}
}

// Check pings every dependency and folds the results into one report.
func (h *HealthChecker) Check() Report {
	dbHealth := h.checkDatabase()
	cacheHealth := h.checkCache()

	status := "healthy"
	if dbHealth.Status != "healthy" {
		status = "unhealthy"
	} else if cacheHealth.Status == "unavailable" {
		status = "degraded"
	}

	return Report{
		Status:   status,
		Database: dbHealth,
		Cache:    cacheHealth,
	}
}

// Healthy reports whether the service can take traffic. A degraded cache
// still counts as ready.
func (r Report) Healthy() bool {
	return r.Status != "unhealthy"
}

func (h *HealthChecker) checkDatabase() ComponentHealth {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	status := "healthy"
	if err != nil {
		status = "unhealthy"
	}
	return ComponentHealth{Status: status, ResponseTime: responseTime}
}

func (h *HealthChecker) checkCache() ComponentHealth {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	start := time.Now()
	err := cache.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	status := "healthy"
	if err != nil {
		status = "unavailable"
	}
	return ComponentHealth{Status: status, ResponseTime: responseTime}
}
