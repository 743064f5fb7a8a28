package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"skycast/internal/config"
	"skycast/internal/providers/openmeteo"
	"skycast/internal/timezone"
	"skycast/internal/types"
)

const (
	hourlyTimeLayout = "2006-01-02T15:04"
	dailyTimeLayout  = "2006-01-02"
)

type ForecastProvider interface {
	// GetForecast fetches the raw forecast for the given latitude, longitude,
	// day count, and IANA timezone name
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	GetForecast(ctx context.Context, coords types.Coords) (*Forecast, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	cfg              *config.Config
	logger           *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewWeatherServiceWithProviders(openmeteo.NewForecastClient(), tzSvc, cfg, logger), nil
}

func NewWeatherServiceWithProviders(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		cfg:              cfg,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetForecast(ctx context.Context, coords types.Coords) (*Forecast, error) {
	// Display policy: timestamps are interpreted and formatted in the
	// location's own zone; UTC when the zone cannot be resolved.
	loc, err := s.timezoneService.Resolve(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("failed to resolve timezone, falling back to UTC",
			"coords", coords.String(),
			"error", err,
		)
		loc = time.UTC
	}

	s.logger.Debug("fetching forecast",
		"coords", coords.String(),
		"timezone", loc.String(),
		"forecast_days", s.cfg.App.ForecastDays,
	)

	apiResponse, err := s.forecastProvider.GetForecast(
		ctx,
		coords.Latitude,
		coords.Longitude,
		s.cfg.App.ForecastDays,
		loc.String(),
	)
	if err != nil {
		s.logger.Error("failed to get forecast from provider", "error", err)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return mapForecastAPIResponseToForecast(coords, loc, apiResponse), nil
}

func mapForecastAPIResponseToForecast(coords types.Coords, loc *time.Location, apiResponse *openmeteo.ForecastAPIResponse) *Forecast {
	forecast := &Forecast{
		FetchedAt: time.Now().UTC(),
		Coords:    coords,
		Timezone:  loc.String(),
		Location:  loc,
		Current:   mapCurrent(apiResponse.Current, loc),
		Hourly:    mapHourly(apiResponse.Hourly, loc),
		Daily:     mapDaily(apiResponse.Daily, loc),
	}
	return forecast
}

func mapCurrent(block openmeteo.CurrentBlock, loc *time.Location) CurrentConditions {
	return CurrentConditions{
		Time:             toTime(block.Time, hourlyTimeLayout, loc),
		Temperature:      types.NewTemperatureFromCelsius(block.Temperature2M),
		Weather:          types.NewWeather(block.WeatherCode),
		Wind:             types.NewWindFromKph(block.WindSpeed10M, block.WindDirection10M),
		RelativeHumidity: block.RelativeHumidity2M,
	}
}

// mapHourly keeps the provider's ordering: samples are appended exactly as
// delivered, with no sorting. Entries whose parallel arrays are short or
// whose timestamp does not parse are skipped.
func mapHourly(block openmeteo.HourlyBlock, loc *time.Location) []HourSample {
	samples := make([]HourSample, 0, len(block.Time))
	for i, raw := range block.Time {
		if i >= len(block.Temperature2M) || i >= len(block.WeatherCode) {
			break
		}
		t := toTime(raw, hourlyTimeLayout, loc)
		if t.IsZero() {
			continue
		}
		samples = append(samples, HourSample{
			Time:        t,
			Temperature: types.NewTemperatureFromCelsius(block.Temperature2M[i]),
			Weather:     types.NewWeather(block.WeatherCode[i]),
		})
	}
	return samples
}

func mapDaily(block openmeteo.DailyBlock, loc *time.Location) []DailyForecast {
	days := make([]DailyForecast, 0, len(block.Time))
	for i, raw := range block.Time {
		if i >= len(block.WeatherCode) || i >= len(block.Temperature2MMax) || i >= len(block.Temperature2MMin) {
			break
		}
		t := toTime(raw, dailyTimeLayout, loc)
		if t.IsZero() {
			continue
		}
		days = append(days, DailyForecast{
			Time:    t,
			Weather: types.NewWeather(block.WeatherCode[i]),
			High:    types.NewTemperatureFromCelsius(block.Temperature2MMax[i]),
			Low:     types.NewTemperatureFromCelsius(block.Temperature2MMin[i]),
		})
	}
	return days
}

// toTime parses a provider timestamp in the given layout and zone, returning
// the zero time when parsing fails
func toTime(raw, layout string, loc *time.Location) time.Time {
	t, err := time.ParseInLocation(layout, raw, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
