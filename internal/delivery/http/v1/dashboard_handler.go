package v1

import (
	"net/http"

	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase, requireAdmin gin.HandlerFunc) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	protected.GET("/dashboard/stats", requireAdmin, handler.Stats)
}

// Stats godoc
// @Summary      Platform statistics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.DashboardStats}
// @Failure      403  {object}  response.Response
// @Router       /dashboard/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Statistics retrieved", stats)
}
