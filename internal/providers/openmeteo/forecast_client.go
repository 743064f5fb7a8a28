package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=39.11&longitude=-107.65&current=temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,wind_direction_10m&hourly=temperature_2m,weather_code&daily=weather_code,temperature_2m_max,temperature_2m_min&timezone=America/Denver&forecast_days=10&timeformat=iso8601
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewForecastClient() *ForecastClient {
	return NewForecastClientWithBaseURL(baseForecastURL)
}

// NewForecastClientWithBaseURL is useful for pointing the client at a test server
func NewForecastClientWithBaseURL(base string) *ForecastClient {
	return &ForecastClient{
		httpClient: &http.Client{},
		baseURL:    base,
	}
}

// GetForecast fetches current, hourly, and daily forecast data for the given
// latitude and longitude. Timestamps in the response are local to the supplied
// IANA timezone name.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	currentVars := []string{
		"temperature_2m",
		"relative_humidity_2m",
		"weather_code",
		"wind_speed_10m",
		"wind_direction_10m",
	}

	hourlyVars := []string{
		"temperature_2m",
		"weather_code",
	}

	dailyVars := []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
	}

	q := u.Query()

	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))

	q.Set("timezone", timezone)
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timeformat", "iso8601")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
