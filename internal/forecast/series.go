// Package forecast turns the provider's daily block into a chart-ready series.
package forecast

import (
	"fmt"

	"weather-widget/internal/providers/openmeteo"
)

// Color is a CSS color understood by the chart engine
type Color string

const (
	ColorGreen Color = "#4caf50"
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
)

// Thresholds in °C for the line color
const (
	HotThreshold  = 30.0
	ColdThreshold = 10.0
)

// DataShapeError reports a daily block that cannot be charted
type DataShapeError struct {
	Reason string
}

func (e *DataShapeError) Error() string {
	return "unexpected forecast data: " + e.Reason
}

// Series is a positionally aligned list of dates and maximum temperatures
type Series struct {
	Labels         []string  `json:"labels"`
	Values         []float64 `json:"values"`
	MaxTemperature float64   `json:"maxTemperature"`
	Color          Color     `json:"color"`
}

// Len returns the number of points in the series
func (s *Series) Len() int {
	return len(s.Values)
}

// Build extracts labels and values from the daily block and picks the line color.
// A missing block, empty or unequal arrays, and null temperatures are rejected.
func Build(daily *openmeteo.DailyBlock) (*Series, error) {
	if daily == nil {
		return nil, &DataShapeError{Reason: "response has no daily block"}
	}
	if len(daily.Time) != len(daily.Temperature2MMax) {
		return nil, &DataShapeError{
			Reason: fmt.Sprintf("%d dates but %d temperatures", len(daily.Time), len(daily.Temperature2MMax)),
		}
	}
	if len(daily.Temperature2MMax) == 0 {
		return nil, &DataShapeError{Reason: "no temperatures in daily block"}
	}

	values := make([]float64, len(daily.Temperature2MMax))
	for i, v := range daily.Temperature2MMax {
		if v == nil {
			return nil, &DataShapeError{Reason: fmt.Sprintf("missing temperature for %s", daily.Time[i])}
		}
		values[i] = *v
	}

	labels := make([]string, len(daily.Time))
	copy(labels, daily.Time)

	maxTemp := maxFloat(values)

	return &Series{
		Labels:         labels,
		Values:         values,
		MaxTemperature: maxTemp,
		Color:          ColorFor(maxTemp),
	}, nil
}

// ColorFor applies the color rule: green by default, red above 30, blue below 10
func ColorFor(maxTemp float64) Color {
	color := ColorGreen
	if maxTemp > HotThreshold {
		color = ColorRed
	}
	if maxTemp < ColdThreshold {
		color = ColorBlue
	}
	return color
}

// maxFloat expects a non-empty slice
func maxFloat(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
