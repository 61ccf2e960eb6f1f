package api

import (
	"net/http"

	"pushpull/studio-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the home-page counters.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// @Summary Headline counts for the dashboard home page
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute dashboard stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}
