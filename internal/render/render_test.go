package render

import (
	"strings"
	"testing"
	"time"

	"skycast/internal/types"
	"skycast/internal/weather"
)

func sampleForecast(base time.Time) *weather.Forecast {
	hourly := make([]weather.HourSample, 0, 48)
	for i := -2; i < 46; i++ {
		hourly = append(hourly, weather.HourSample{
			Time:        base.Add(time.Duration(i) * time.Hour),
			Temperature: types.NewTemperatureFromCelsius(float64(i)),
			Weather:     types.NewWeather(int(types.ClearSky)),
		})
	}

	daily := make([]weather.DailyForecast, 0, 10)
	for i := 0; i < 10; i++ {
		daily = append(daily, weather.DailyForecast{
			Time:    base.AddDate(0, 0, i),
			Weather: types.NewWeather(int(types.PartlyCloudy)),
			High:    types.NewTemperatureFromCelsius(float64(10 + i)),
			Low:     types.NewTemperatureFromCelsius(float64(i)),
		})
	}

	return &weather.Forecast{
		FetchedAt: base,
		Coords:    types.NewCoords(39.11539, -107.65840),
		Timezone:  "UTC",
		Location:  time.UTC,
		Current: weather.CurrentConditions{
			Time:             base,
			Temperature:      types.NewTemperatureFromCelsius(12),
			Weather:          types.NewWeather(int(types.Overcast)),
			Wind:             types.NewWindFromKph(15, 270),
			RelativeHumidity: 60,
		},
		Hourly: hourly,
		Daily:  daily,
	}
}

func TestDashboard(t *testing.T) {
	// A Monday at 14:00 UTC.
	base := time.Date(2025, 1, 13, 14, 0, 0, 0, time.UTC)
	f := sampleForecast(base)

	var sb strings.Builder
	Dashboard(&sb, f, base, weather.DefaultHourlyWindow)
	out := sb.String()

	for _, want := range []string{
		"39.11539,-107.65840",
		"Overcast",
		"2PM", // window starts at now
		"MON", // daily list starts today
		"█",   // chart bars present
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// The strip starts at the reference hour, not at the timeline's past head.
	if !strings.Contains(out, "\n2PM") {
		t.Errorf("hourly strip does not start at 2PM:\n%s", out)
	}

	// Daily list and chart both render one row per day.
	wantRows := 2 * len(f.Daily)
	gotRows := strings.Count(out, "MON") + strings.Count(out, "TUE") +
		strings.Count(out, "WED") + strings.Count(out, "THU") +
		strings.Count(out, "FRI") + strings.Count(out, "SAT") +
		strings.Count(out, "SUN")
	if gotRows != wantRows {
		t.Errorf("output has %d weekday rows, want %d:\n%s", gotRows, wantRows, out)
	}
}

func TestDashboard_NilForecast(t *testing.T) {
	var sb strings.Builder
	Dashboard(&sb, nil, time.Now(), weather.DefaultHourlyWindow)

	if got := sb.String(); got != "no forecast data\n" {
		t.Errorf("Dashboard(nil) = %q, want placeholder line", got)
	}
}

func TestDashboard_EmptyHourly(t *testing.T) {
	base := time.Date(2025, 1, 13, 14, 0, 0, 0, time.UTC)
	f := sampleForecast(base)
	f.Hourly = nil

	var sb strings.Builder
	Dashboard(&sb, f, base, weather.DefaultHourlyWindow)

	if !strings.Contains(sb.String(), "no hourly data") {
		t.Errorf("output missing hourly placeholder:\n%s", sb.String())
	}
}
