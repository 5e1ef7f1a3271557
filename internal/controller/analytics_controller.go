package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hqanh/theorytrainer/internal/dto"
	"github.com/hqanh/theorytrainer/internal/service"
)

type AnalyticsController struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsController(analyticsSvc service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsSvc: analyticsSvc}
}

// GetTroubleSpots godoc
// @Summary Rank most-missed concepts
// @Description Per-concept miss rate over all recorded attempts, worst first. Empty list when no attempts exist.
// @Tags analytics
// @Produce json
// @Param limit query int false "Maximum entries to return" default(10)
// @Success 200 {array} dto.TroubleSpot
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/trouble-spots [get]
func (ctrl *AnalyticsController) GetTroubleSpots(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit"})
		return
	}

	spots, err := ctrl.analyticsSvc.TroubleSpots(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute trouble spots")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to compute trouble spots"})
		return
	}
	c.JSON(http.StatusOK, spots)
}
