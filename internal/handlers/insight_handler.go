package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Anurag-techs/Spend-Smart/internal/errors"
	"github.com/Anurag-techs/Spend-Smart/internal/insights"
)

// InsightHandler handles insight and nudge generation requests
type InsightHandler struct {
	engine *insights.Engine
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(engine *insights.Engine) *InsightHandler {
	return &InsightHandler{engine: engine}
}

// GetInsights runs the insight engine for the authenticated user
// @Summary     Get spending insights
// @Description Analyze recent spending and return descriptive insights plus up to five advisory nudges. Defaults to the trailing 30 days when no range is given.
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       start_date query string false "Window start (YYYY-MM-DD)"
// @Param       end_date query string false "Window end (YYYY-MM-DD)"
// @Success     200 {object} insights.Result "Insights and nudges"
// @Failure     400 {object} ErrorResponse "Invalid date range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights [get]
func (h *InsightHandler) GetInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	start, err := parseDateParam(c.Query("start_date"), "start_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseDateParam(c.Query("end_date"), "end_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if start != nil && end != nil && end.Before(*start) {
		respondWithError(c, apperrors.ErrInvalidDateRange)
		return
	}

	result, err := h.engine.GenerateInsights(userID, start, endOfDay(end))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
