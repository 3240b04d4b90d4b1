package main

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-widget/internal/forecast"
	"weather-widget/internal/location"
	"weather-widget/internal/providers/openmeteo"
	"weather-widget/internal/status"
	"weather-widget/internal/widget"
)

// SearchRequest represents the body of a search request
type SearchRequest struct {
	Location string `json:"location" form:"location" example:"40.7,-74.0"` // "lat,lon"; anything else searches the default location
}

// SearchResponse represents the result of an applied search
type SearchResponse struct {
	Result *widget.Result `json:"result"`
	Status status.View    `json:"status"`
}

// ErrorResponse represents an error returned by the API
type ErrorResponse struct {
	Error string `json:"error" example:"failed to fetch forecast data"`
}

// handleSearch godoc
// @Summary Search a forecast
// @Description Parse a "lat,lon" location, fetch the daily maximum temperature forecast and draw it in the chart slot.
// @Description Text without a comma searches the default location (19.43,-99.13).
// @Tags widget
// @Accept json
// @Produce json
// @Param request body SearchRequest false "Location to search"
// @Param location query string false "Location to search when no body is sent" example(40.7,-74.0)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinate"
// @Failure 409 {object} ErrorResponse "Superseded by a newer search"
// @Failure 502 {object} ErrorResponse "Forecast provider failed"
// @Failure 500 {object} ErrorResponse
// @Router /api/search [post]
func (app *App) handleSearch(c *gin.Context) {
	var req SearchRequest
	// ContentLength is -1 for chunked bodies, so only an absent body skips binding
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
			return
		}
	}
	if req.Location == "" {
		req.Location = c.Query("location")
	}

	result, err := app.widget.Search(c.Request.Context(), req.Location)
	if err != nil {
		c.JSON(statusCodeFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Result: result,
		Status: app.widget.Status(),
	})
}

// statusCodeFor maps search errors to HTTP status codes
func statusCodeFor(err error) int {
	var (
		inputErr   *location.InputError
		requestErr *openmeteo.RequestError
		shapeErr   *forecast.DataShapeError
	)

	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.Is(err, widget.ErrSuperseded):
		return http.StatusConflict
	case errors.As(err, &requestErr), errors.As(err, &shapeErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
