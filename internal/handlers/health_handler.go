package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/hosteldesk/complaint-service/internal/repositories"
	"github.com/hosteldesk/complaint-service/internal/utils"
)

type HealthHandler struct {
	BaseHandler
	repo        repositories.Repository
	redisClient *redis.Client
}

func NewHealthHandler(repo repositories.Repository, redisClient *redis.Client, logger utils.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: NewBaseHandler(logger),
		repo:        repo,
		redisClient: redisClient,
	}
}

// Check reports liveness of the service and its stores.
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{"database": "ok", "redis": "ok"}

	if err := h.repo.Ping(c.Request.Context()); err != nil {
		status = http.StatusServiceUnavailable
		checks["database"] = err.Error()
	}
	if h.redisClient != nil {
		if err := h.redisClient.Ping(c.Request.Context()).Err(); err != nil {
			status = http.StatusServiceUnavailable
			checks["redis"] = err.Error()
		}
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":    overall,
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
