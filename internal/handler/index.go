package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetIndex godoc
// @Summary      Current redemption index
// @Description  Computes (or serves from cache) the composite index: four 0-25 sub-scores summed into a 0-100 total, or a zero-score envelope during Shabbat/holiday blackout
// @Tags         index
// @Produce      json
// @Success      200  {object}  domain.IndexReport
// @Router       /api/index [get]
func (h *Handler) GetIndex(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-index")
	defer span.End()

	report := h.reports.GetReport(ctx)
	c.JSON(http.StatusOK, report)
}
