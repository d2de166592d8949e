package controllers

import (
	"net/http"

	"payment-api/services"

	"github.com/gin-gonic/gin"
)

// StatsController handles HTTP requests for the reporting rollup.
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController.
func NewStatsController(svc services.StatsService) *StatsController {
	return &StatsController{statsService: svc}
}

// GetStats handles GET /stats
func (sc *StatsController) GetStats(ctx *gin.Context) {
	stats, svcErr := sc.statsService.Collect(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
