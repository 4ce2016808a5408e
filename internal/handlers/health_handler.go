package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/legalpulse/survey-api/internal/repository"
	"github.com/legalpulse/survey-api/pkg/logger"
	"go.uber.org/zap"
)

// pingTimeout bounds the store check of one health probe
const pingTimeout = 2 * time.Second

type HealthHandler struct {
	store repository.HealthChecker
}

func NewHealthHandler(store repository.HealthChecker) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.Warn("Healthcheck failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "survey store unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
