package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestForecastClient_GetForecast(t *testing.T) {
	payload := `{
		"latitude": 39.11,
		"longitude": -107.65,
		"timezone": "America/Denver",
		"current": {
			"time": "2025-01-13T14:00",
			"temperature_2m": -5.2,
			"relative_humidity_2m": 80,
			"weather_code": 71,
			"wind_speed_10m": 12.5,
			"wind_direction_10m": 270
		},
		"hourly": {
			"time": ["2025-01-13T14:00", "2025-01-13T15:00"],
			"temperature_2m": [-5.2, -4.8],
			"weather_code": [71, 73]
		},
		"daily": {
			"time": ["2025-01-13"],
			"weather_code": [71],
			"temperature_2m_max": [-1.0],
			"temperature_2m_min": [-9.0]
		}
	}`

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewForecastClientWithBaseURL(server.URL)

	resp, err := client.GetForecast(context.Background(), 39.11, -107.65, 10, "America/Denver")
	if err != nil {
		t.Fatalf("GetForecast() unexpected error = %v", err)
	}

	if resp.Timezone != "America/Denver" {
		t.Errorf("Timezone = %q, want America/Denver", resp.Timezone)
	}
	if len(resp.Hourly.Time) != 2 {
		t.Errorf("len(Hourly.Time) = %d, want 2", len(resp.Hourly.Time))
	}
	if resp.Current.WeatherCode != 71 {
		t.Errorf("Current.WeatherCode = %d, want 71", resp.Current.WeatherCode)
	}
	if resp.Daily.Temperature2MMin[0] != -9.0 {
		t.Errorf("Daily.Temperature2MMin[0] = %v, want -9", resp.Daily.Temperature2MMin[0])
	}

	for _, param := range []string{"forecast_days=10", "timeformat=iso8601"} {
		if !strings.Contains(gotQuery, param) {
			t.Errorf("request query missing %q: %s", param, gotQuery)
		}
	}
	if !strings.Contains(gotQuery, "America%2FDenver") {
		t.Errorf("request query missing timezone: %s", gotQuery)
	}
}

func TestForecastClient_GetForecast_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "out of capacity", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewForecastClientWithBaseURL(server.URL)

	_, err := client.GetForecast(context.Background(), 39.11, -107.65, 10, "UTC")
	if err == nil {
		t.Fatal("GetForecast() expected error but got none")
	}
	if !strings.Contains(err.Error(), "status 503") {
		t.Errorf("GetForecast() error = %v, want status 503", err)
	}
}
