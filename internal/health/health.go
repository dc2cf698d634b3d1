package health

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Status represents the health status of a service or dependency.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult represents the health check result for a single dependency.
type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HealthStatus represents the overall health status of the service.
type HealthStatus struct {
	Status  Status                 `json:"status"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// PingFunc reports whether a dependency is reachable.
type PingFunc func(ctx context.Context) error

type namedCheck struct {
	name string
	ping PingFunc
}

// Checker performs health checks on service dependencies.
type Checker struct {
	checks  []namedCheck
	version string
}

func NewChecker(version string) *Checker {
	return &Checker{
		version: version,
	}
}

// AddCheck registers a dependency probed by readiness checks.
func (c *Checker) AddCheck(name string, ping PingFunc) *Checker {
	c.checks = append(c.checks, namedCheck{name: name, ping: ping})
	return c
}

func (c *Checker) WithRedis(client *redis.Client) *Checker {
	if client == nil {
		return c
	}
	return c.AddCheck("redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}

func (c *Checker) WithDatabase(db *sql.DB) *Checker {
	if db == nil {
		return c
	}
	return c.AddCheck("database", db.PingContext)
}

// Check performs health checks on all dependencies and returns the overall status.
func (c *Checker) Check(ctx context.Context) *HealthStatus {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := &HealthStatus{
		Status:  StatusHealthy,
		Version: c.version,
		Checks:  make(map[string]CheckResult),
	}

	for _, check := range c.checks {
		start := time.Now()
		if err := check.ping(checkCtx); err != nil {
			status.Status = StatusUnhealthy
			status.Checks[check.name] = CheckResult{
				Status: StatusUnhealthy,
				Error:  err.Error(),
			}
			continue
		}
		status.Checks[check.name] = CheckResult{
			Status:    StatusHealthy,
			LatencyMs: time.Since(start).Milliseconds(),
		}
	}

	return status
}

// LiveHandler returns a Gin handler for liveness probes.
func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler returns a Gin handler for readiness probes.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if status.Status != StatusHealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, status)
	}
}
