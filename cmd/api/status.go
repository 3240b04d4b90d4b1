package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"weather-widget/internal/history"
)

// handleGetStatus godoc
// @Summary Widget status
// @Description Get the loading and error indicators of the widget
// @Tags widget
// @Produce json
// @Success 200 {object} status.View
// @Router /api/status [get]
func (app *App) handleGetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, app.widget.Status())
}

// SearchesResponse represents the recent search history
type SearchesResponse struct {
	Searches []history.Record `json:"searches"`
}

// handleListSearches godoc
// @Summary Recent searches
// @Description List applied searches, most recent first
// @Tags widget
// @Produce json
// @Param limit query int false "Maximum number of searches" default(20) minimum(1)
// @Success 200 {object} SearchesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/searches [get]
func (app *App) handleListSearches(c *gin.Context) {
	limit := app.cfg.History.Limit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	records, err := app.widget.History(c.Request.Context(), limit)
	if err != nil {
		app.logger.Error("failed to list searches", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list searches"})
		return
	}

	c.JSON(http.StatusOK, SearchesResponse{Searches: records})
}
