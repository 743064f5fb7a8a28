package weather

import (
	"time"

	"skycast/internal/types"
)

// HourSample is one hourly forecast entry
type HourSample struct {
	Time        time.Time         `json:"time"`
	Temperature types.Temperature `json:"temperature"`
	Weather     types.Weather     `json:"weather"`
}

// DailyForecast is one entry of the daily forecast series
type DailyForecast struct {
	Time    time.Time         `json:"time"`
	Weather types.Weather     `json:"weather"`
	High    types.Temperature `json:"high"`
	Low     types.Temperature `json:"low"`
}

// CurrentConditions is the provider's most recent observation
type CurrentConditions struct {
	Time             time.Time         `json:"time"`
	Temperature      types.Temperature `json:"temperature"`
	Weather          types.Weather     `json:"weather"`
	Wind             types.Wind        `json:"wind"`
	RelativeHumidity float64           `json:"relative_humidity"`
}

// Forecast is a complete fetched forecast for one coordinate. Hourly is the
// full provider timeline, ordered as delivered (assumed ascending, never
// re-sorted here); SelectWindow derives the displayed slice from it.
type Forecast struct {
	FetchedAt time.Time         `json:"fetched_at"`
	Coords    types.Coords      `json:"coords"`
	Timezone  string            `json:"timezone"`
	Current   CurrentConditions `json:"current"`
	Hourly    []HourSample      `json:"hourly"`
	Daily     []DailyForecast   `json:"daily"`

	// Location is the loaded zone matching Timezone; UTC when resolution
	// failed. Display formatting uses it.
	Location *time.Location `json:"-"`
}
