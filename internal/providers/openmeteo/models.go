package openmeteo

// ForecastAPIResponse is the raw open-meteo forecast payload, restricted to the
// variables the client requests
type ForecastAPIResponse struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	Timezone             string  `json:"timezone"`
	TimezoneAbbreviation string  `json:"timezone_abbreviation"`
	Elevation            float64 `json:"elevation"`

	Current CurrentBlock `json:"current"`
	Hourly  HourlyBlock  `json:"hourly"`
	Daily   DailyBlock   `json:"daily"`
}

// CurrentBlock carries the current conditions sample
type CurrentBlock struct {
	Time               string  `json:"time"`
	Temperature2M      float64 `json:"temperature_2m"`
	RelativeHumidity2M float64 `json:"relative_humidity_2m"`
	WeatherCode        int     `json:"weather_code"`
	WindSpeed10M       float64 `json:"wind_speed_10m"`
	WindDirection10M   float64 `json:"wind_direction_10m"`
}

// HourlyBlock carries parallel arrays, one entry per forecast hour
type HourlyBlock struct {
	Time          []string  `json:"time"`
	Temperature2M []float64 `json:"temperature_2m"`
	WeatherCode   []int     `json:"weather_code"`
}

// DailyBlock carries parallel arrays, one entry per forecast day
type DailyBlock struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	Temperature2MMax []float64 `json:"temperature_2m_max"`
	Temperature2MMin []float64 `json:"temperature_2m_min"`
}
