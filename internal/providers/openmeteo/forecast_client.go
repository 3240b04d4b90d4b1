package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=19.43&longitude=-99.13&daily=temperature_2m_max&timezone=auto
const (
	BaseForecastURL = "https://api.open-meteo.com/v1/forecast"

	dailyMaxTemperature = "temperature_2m_max"
	timezoneAuto        = "auto"

	// Returned for any non-2xx response; the status is kept on the error for logs only
	fetchFailedMessage = "failed to fetch forecast data"
)

// RequestError reports a failed forecast request: a non-success status,
// a transport failure or an undecodable body.
type RequestError struct {
	StatusCode int // zero when no response was received
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewForecastClient creates a client for the given base URL, the public API when empty
func NewForecastClient(baseURL string, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = BaseForecastURL
	}
	return &ForecastClient{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-client"),
	}
}

// GetDailyForecast fetches the daily maximum temperature forecast.
// Latitude and longitude are forwarded verbatim and the timezone is resolved by the API.
func (c *ForecastClient) GetDailyForecast(ctx context.Context, latitude, longitude string) (*DailyForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("failed to parse base URL: %v", err), Err: err}
	}

	q := u.Query()
	q.Set("latitude", latitude)
	q.Set("longitude", longitude)
	q.Set("daily", dailyMaxTemperature)
	q.Set("timezone", timezoneAuto)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("failed to create request: %v", err), Err: err}
	}

	c.logger.Debug("requesting daily forecast", "url", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Message: err.Error(), Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("forecast request returned non-success status", "status", resp.StatusCode)
		c.logger.Debug("non-success forecast response body", "status", resp.StatusCode, "body", string(body))
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message:    fetchFailedMessage,
			Err:        fmt.Errorf("fetch returned status %d", resp.StatusCode),
		}
	}

	var apiResp DailyForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to decode response: %v", err),
			Err:        err,
		}
	}

	return &apiResp, nil
}
