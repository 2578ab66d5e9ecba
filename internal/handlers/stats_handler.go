package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solocrm/internal/services"
)

type StatsHandler struct {
	Service *services.StatsService
}

func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{Service: service}
}

// GetSummary godoc
// @Summary  Dashboard KPIs, funnel distribution and 6-month revenue trend
// @Tags     stats
// @Produce  json
// @Success  200 {object} services.Summary
// @Router   /stats [get]
func (h *StatsHandler) GetSummary(c *gin.Context) {
	summary, err := h.Service.GetSummary(c.Request.Context())
	if err != nil {
		// The service already collapses every failure into the generic error.
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.ErrStatsUnavailable.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
