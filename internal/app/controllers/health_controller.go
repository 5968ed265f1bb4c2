package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/acadservice/internal/app/models/dto"
	"github.com/yigit/acadservice/internal/db"
	"github.com/yigit/acadservice/internal/pkg/helpers"
	"github.com/yigit/acadservice/internal/pkg/logger"
)

// HealthStatus is reported by the liveness probe
const HealthStatus = "Acad Service is running"

// HealthController serves liveness and readiness probes
type HealthController struct {
	db  db.Pinger
	now func() time.Time
}

// NewHealthController creates a new HealthController
func NewHealthController(pinger db.Pinger) *HealthController {
	return &HealthController{db: pinger, now: time.Now}
}

// Health reports that the process is up
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    HealthStatus,
		Timestamp: helpers.ISOTimestamp(c.now()),
	})
}

// Ready reports whether the database answers
// @Summary Readiness probe
// @Tags system
// @Produce json
// @Success 200 {object} dto.ReadinessResponse
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Router /ready [get]
func (c *HealthController) Ready(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Readiness check failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeServiceUnavailable, "Database unavailable"),
		))
		return
	}

	ctx.JSON(http.StatusOK, dto.ReadinessResponse{Status: "ready", Database: "up"})
}
