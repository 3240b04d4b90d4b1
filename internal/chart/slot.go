package chart

import (
	"fmt"
	"sync"
)

// Slot holds at most one live chart handle
type Slot struct {
	mu      sync.RWMutex
	engine  Engine
	current *Handle
}

func NewSlot(engine Engine) *Slot {
	return &Slot{engine: engine}
}

// Replace releases the current handle, if any, and installs h
func (s *Slot) Replace(h *Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current != h {
		s.engine.Release(s.current)
	}
	s.current = h
}

// Current returns the installed handle or nil
func (s *Slot) Current() *Handle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Clear releases the installed handle and leaves the slot empty
func (s *Slot) Clear() {
	s.Replace(nil)
}

// LoadingIndicator is the part of the status display the renderer touches
type LoadingIndicator interface {
	HideLoading()
}

// Renderer draws charts into a slot
type Renderer struct {
	engine    Engine
	slot      *Slot
	indicator LoadingIndicator
}

func NewRenderer(engine Engine, indicator LoadingIndicator) *Renderer {
	return &Renderer{
		engine:    engine,
		slot:      NewSlot(engine),
		indicator: indicator,
	}
}

// Draw hides the loading indicator, renders spec and swaps it into the slot
func (r *Renderer) Draw(spec Spec) (*Handle, error) {
	r.indicator.HideLoading()

	h, err := r.engine.Render(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to draw chart: %w", err)
	}

	r.slot.Replace(h)
	return h, nil
}

// Current returns the chart on display or nil
func (r *Renderer) Current() *Handle {
	return r.slot.Current()
}

// Live reports how many rendered charts are still held by the engine
func (r *Renderer) Live() int {
	return r.engine.Live()
}

// Close releases the chart on display
func (r *Renderer) Close() {
	r.slot.Clear()
}
