// Package widget runs a weather search from free text to a rendered chart.
package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"weather-widget/internal/chart"
	"weather-widget/internal/config"
	"weather-widget/internal/forecast"
	"weather-widget/internal/history"
	"weather-widget/internal/location"
	"weather-widget/internal/providers/openmeteo"
	"weather-widget/internal/status"
	"weather-widget/internal/timezone"
	"weather-widget/internal/types"
)

//go:generate mockgen -source=widget.go -destination=mock/mock.go ForecastFetcher TimezoneResolver

// ChartTitle is the title drawn above every forecast chart
const ChartTitle = "Daily Maximum Temperature"

// ErrSuperseded is returned by a search that finished after a newer one started
var ErrSuperseded = errors.New("search superseded by a newer search")

// ForecastFetcher fetches the daily forecast for a coordinate
type ForecastFetcher interface {
	GetDailyForecast(ctx context.Context, latitude, longitude string) (*openmeteo.DailyForecastAPIResponse, error)
}

// TimezoneResolver names the timezone of a coordinate when the provider does not
type TimezoneResolver interface {
	Lookup(coord types.Coordinate) (string, error)
}

// Options tune the search pipeline
type Options struct {
	Fallback            types.Coordinate
	ValidateCoordinates bool
	RequestTimeout      time.Duration
}

// Result is the outcome of an applied search
type Result struct {
	Coordinate types.Coordinate `json:"coordinate"`
	Series     *forecast.Series `json:"series"`
	Timezone   string           `json:"timezone,omitempty" example:"America/New_York"`
	ChartID    string           `json:"chartId"`
}

// Widget owns the status display and the single chart slot
type Widget struct {
	parser    *location.Parser
	fetcher   ForecastFetcher
	timezones TimezoneResolver
	history   history.Store
	display   *status.Display
	renderer  *chart.Renderer
	opts      Options
	logger    *slog.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// New builds a widget backed by Open-Meteo, go-echarts and the configured history store
func New(cfg *config.Config, logger *slog.Logger) (*Widget, error) {
	fetcher := openmeteo.NewForecastClient(cfg.OpenMeteo.BaseURL, logger)

	var timezones TimezoneResolver
	if cfg.App.ResolveTimezone {
		tzService, err := timezone.NewService()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize timezone service: %w", err)
		}
		timezones = tzService
	}

	var store history.Store = history.NewMemoryStore(0)
	if cfg.History.Path != "" {
		sqliteStore, err := history.NewSQLiteStore(cfg.History.Path, logger)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	}

	opts := Options{
		Fallback:            types.NewCoordinate(cfg.App.DefaultLatitude, cfg.App.DefaultLongitude),
		ValidateCoordinates: cfg.App.ValidateCoordinates,
		RequestTimeout:      cfg.App.RequestTimeout,
	}

	return NewWithProviders(fetcher, timezones, store, chart.NewEChartsEngine(), opts, logger), nil
}

// NewWithProviders creates a widget with custom collaborators (useful for testing).
// timezones may be nil.
func NewWithProviders(
	fetcher ForecastFetcher,
	timezones TimezoneResolver,
	store history.Store,
	engine chart.Engine,
	opts Options,
	logger *slog.Logger,
) *Widget {
	if opts.Fallback == (types.Coordinate{}) {
		opts.Fallback = types.NewCoordinate(location.DefaultLatitude, location.DefaultLongitude)
	}

	display := status.NewDisplay()

	return &Widget{
		parser:    location.NewParser(opts.Fallback),
		fetcher:   fetcher,
		timezones: timezones,
		history:   store,
		display:   display,
		renderer:  chart.NewRenderer(engine, display),
		opts:      opts,
		logger:    logger.With("component", "widget"),
	}
}

// Search parses text, fetches the forecast and draws it.
// Failures are shown on the status display and returned. A search overtaken
// by a newer one returns ErrSuperseded and leaves the display untouched.
func (w *Widget) Search(ctx context.Context, text string) (*Result, error) {
	ctx, seq, done := w.begin(ctx)
	defer done()

	coord := w.parser.Parse(text)
	w.logger.Debug("search started", "seq", seq, "coordinate", coord.String())
	if coord == w.parser.Fallback() {
		w.logger.Debug("searching default coordinate", "input", text)
	}

	result, series, err := w.fetch(ctx, coord)

	w.mu.Lock()
	if seq != w.seq {
		w.mu.Unlock()
		w.logger.Debug("search superseded", "seq", seq, "coordinate", coord.String())
		return nil, ErrSuperseded
	}

	if err == nil {
		var h *chart.Handle
		h, err = w.renderer.Draw(chart.Spec{
			Title:    ChartTitle,
			Subtitle: subtitle(coord, result.Timezone),
			Labels:   series.Labels,
			Values:   series.Values,
			Color:    string(series.Color),
		})
		if err == nil {
			result.ChartID = h.ID
		}
	}
	if err != nil {
		w.display.ShowError(err.Error())
	}
	w.mu.Unlock()

	w.record(ctx, coord, series, err)

	if err != nil {
		w.logger.Warn("search failed", "coordinate", coord.String(), "error", err)
		return nil, err
	}

	w.logger.Info("forecast drawn",
		"coordinate", coord.String(),
		"points", series.Len(),
		"maxTemperature", series.MaxTemperature,
		"color", series.Color,
	)
	return result, nil
}

// begin makes this search the latest one, cancelling the previous search
func (w *Widget) begin(ctx context.Context) (context.Context, uint64, context.CancelFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		w.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	w.seq++
	w.cancel = cancel
	w.display.ShowLoading()

	return ctx, w.seq, cancel
}

// fetch runs the side-effect free part of the pipeline
func (w *Widget) fetch(ctx context.Context, coord types.Coordinate) (*Result, *forecast.Series, error) {
	if w.opts.ValidateCoordinates {
		if err := location.Validate(coord); err != nil {
			return nil, nil, err
		}
	}

	if w.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.opts.RequestTimeout)
		defer cancel()
	}

	resp, err := w.fetcher.GetDailyForecast(ctx, coord.Latitude, coord.Longitude)
	if err != nil {
		return nil, nil, err
	}

	series, err := forecast.Build(resp.Daily)
	if err != nil {
		return nil, nil, err
	}

	return &Result{
		Coordinate: coord,
		Series:     series,
		Timezone:   w.resolveTimezone(coord, resp.Timezone),
	}, series, nil
}

func (w *Widget) resolveTimezone(coord types.Coordinate, reported string) string {
	if reported != "" || w.timezones == nil {
		return reported
	}
	tz, err := w.timezones.Lookup(coord)
	if err != nil {
		w.logger.Debug("timezone lookup failed", "coordinate", coord.String(), "error", err)
		return ""
	}
	return tz
}

// record writes the search to history; failures are only logged
func (w *Widget) record(ctx context.Context, coord types.Coordinate, series *forecast.Series, searchErr error) {
	r := history.Record{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		Outcome:   history.OutcomeOK,
	}
	if searchErr != nil {
		r.Outcome = history.OutcomeError
		r.Error = searchErr.Error()
	} else {
		maxTemp := series.MaxTemperature
		r.MaxTemperature = &maxTemp
		r.Color = string(series.Color)
	}

	// the search context may already be cancelled
	if err := w.history.Record(context.WithoutCancel(ctx), r); err != nil {
		w.logger.Error("failed to record search", "error", err)
	}
}

func subtitle(coord types.Coordinate, tz string) string {
	if tz == "" {
		return coord.String()
	}
	return fmt.Sprintf("%s (%s)", coord.String(), tz)
}

// Status returns the current status display
func (w *Widget) Status() status.View {
	return w.display.Snapshot()
}

// Chart returns the chart on display or nil
func (w *Widget) Chart() *chart.Handle {
	return w.renderer.Current()
}

// Live reports how many rendered charts are still held
func (w *Widget) Live() int {
	return w.renderer.Live()
}

// History returns the most recent searches first
func (w *Widget) History(ctx context.Context, limit int) ([]history.Record, error) {
	return w.history.List(ctx, limit)
}

// Close cancels any running search and releases the chart and history store
func (w *Widget) Close() error {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	w.mu.Unlock()

	w.renderer.Close()
	return w.history.Close()
}
