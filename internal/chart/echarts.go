package chart

import (
	"bytes"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
)

// EChartsEngine renders interactive HTML line charts with go-echarts
type EChartsEngine struct {
	width  string
	height string
	live   atomic.Int64
}

func NewEChartsEngine() *EChartsEngine {
	return &EChartsEngine{
		width:  "100%",
		height: "420px",
	}
}

// Render draws a smoothed line with visible points, axis tooltip and titled axes
func (e *EChartsEngine) Render(spec Spec) (*Handle, error) {
	id := uuid.NewString()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: spec.Title,
			Width:     e.width,
			Height:    e.height,
			// go-echarts uses the chart id in a JS identifier
			ChartID:   strings.ReplaceAll(id, "-", ""),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    spec.Title,
			Subtitle: spec.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: XAxisTitle, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: YAxisTitle, Type: "value"}),
	)

	data := make([]opts.LineData, len(spec.Values))
	for i, v := range spec.Values {
		data[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(spec.Labels).
		AddSeries(SeriesName, data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: true, ShowSymbol: true}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: spec.Color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: spec.Color}),
		)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render line chart: %w", err)
	}

	e.live.Add(1)
	return NewHandle(id, spec, buf.Bytes()), nil
}

// Release frees the handle's document; releasing twice is a no-op
func (e *EChartsEngine) Release(h *Handle) {
	if h == nil {
		return
	}
	if h.release() {
		e.live.Add(-1)
	}
}

func (e *EChartsEngine) Live() int {
	return int(e.live.Load())
}
