package openmeteo

// DailyForecastAPIResponse is the subset of the forecast response the widget reads
type DailyForecastAPIResponse struct {
	Latitude         float64     `json:"latitude"`
	Longitude        float64     `json:"longitude"`
	GenerationtimeMs float64     `json:"generationtime_ms"`
	UtcOffsetSeconds int         `json:"utc_offset_seconds"`
	Timezone         string      `json:"timezone"`
	Elevation        float64     `json:"elevation"`
	DailyUnits       *DailyUnits `json:"daily_units,omitempty"`
	Daily            *DailyBlock `json:"daily"`
}

type DailyUnits struct {
	Time             string `json:"time"`
	Temperature2MMax string `json:"temperature_2m_max"`
}

// DailyBlock holds the per-day arrays. Temperatures are pointers because
// the API sends null for days a model does not cover.
type DailyBlock struct {
	Time             []string   `json:"time"`
	Temperature2MMax []*float64 `json:"temperature_2m_max"`
}
