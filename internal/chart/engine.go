// Package chart draws the forecast line chart and owns the single live chart handle.
package chart

import (
	"sync/atomic"
	"time"
)

// Fixed chart texts
const (
	SeriesName = "Maximum Temperature (°C)"
	YAxisTitle = "Temperature (°C)"
	XAxisTitle = "Date"
)

// Spec describes one chart to draw
type Spec struct {
	Title    string
	Subtitle string
	Labels   []string
	Values   []float64
	Color    string
}

// Engine renders charts and frees the resources held by a handle
type Engine interface {
	Render(spec Spec) (*Handle, error)
	Release(h *Handle)
	// Live returns the number of handles rendered and not yet released
	Live() int
}

// Handle is a rendered chart
type Handle struct {
	ID        string
	Color     string
	Points    int
	CreatedAt time.Time

	content  atomic.Pointer[[]byte]
	released atomic.Bool
}

// NewHandle wraps rendered content; engines call it from Render
func NewHandle(id string, spec Spec, content []byte) *Handle {
	h := &Handle{
		ID:        id,
		Color:     spec.Color,
		Points:    len(spec.Values),
		CreatedAt: time.Now().UTC(),
	}
	h.content.Store(&content)
	return h
}

// Content returns the rendered document, nil once released
func (h *Handle) Content() []byte {
	content := h.content.Load()
	if content == nil {
		return nil
	}
	return *content
}

func (h *Handle) Released() bool {
	return h.released.Load()
}

// release marks the handle released and reports whether this call did it
func (h *Handle) release() bool {
	if !h.released.CompareAndSwap(false, true) {
		return false
	}
	h.content.Store(nil)
	return true
}
