package main

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexPage []byte

const htmlContentType = "text/html; charset=utf-8"

// handleIndex serves the widget page
func (app *App) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType, indexPage)
}

// handleGetChart godoc
// @Summary Current chart
// @Description Get the chart on display as an interactive HTML document
// @Tags widget
// @Produce html
// @Success 200 {string} string "Chart document"
// @Failure 404 {object} ErrorResponse "No chart drawn yet"
// @Router /chart [get]
func (app *App) handleGetChart(c *gin.Context) {
	h := app.widget.Chart()
	if h == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no chart drawn yet"})
		return
	}

	content := h.Content()
	if content == nil {
		// replaced between Chart() and Content()
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "chart was replaced, retry"})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Header("X-Chart-ID", h.ID)
	c.Data(http.StatusOK, htmlContentType, content)
}
