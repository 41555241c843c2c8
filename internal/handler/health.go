package handler

import (
	"net/http"
	"time"

	"github.com/beknazar93/CRM2/internal/infra"
	"github.com/beknazar93/CRM2/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db      *gorm.DB
	rdb     *redis.Client
	breaker *infra.CircuitBreaker
	started time.Time
}

func NewHealthHandler(db *gorm.DB, rdb *redis.Client, breaker *infra.CircuitBreaker) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb, breaker: breaker, started: time.Now()}
}

// Check reports liveness of the process and its dependencies. A degraded
// dependency does not flip the overall status to error — the API keeps
// serving requests that do not need it.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	dbStatus := "ok"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		dbStatus = "unreachable"
	}

	redisStatus := "ok"
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		redisStatus = "unreachable"
	}

	status := "ok"
	if dbStatus != "ok" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         status,
		"uptime":         time.Since(h.started).Truncate(time.Second).String(),
		"database":       dbStatus,
		"redis":          redisStatus,
		"smtp_breaker":   h.breaker.State().String(),
		"chat_relay_dlq": worker.DLQLength(ctx, h.rdb, worker.QueueChatRelay),
	})
}
