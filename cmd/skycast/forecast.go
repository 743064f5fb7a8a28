package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skycast/internal/types"
	"skycast/internal/weather"
)

// GetHourlyInput defines the query parameters for the hourly endpoint
type GetHourlyInput struct {
	Hours int `form:"hours" binding:"omitempty,min=1,max=168"` // window size, defaults to the configured value
}

// HourItem is one entry of the hourly response, carrying the display label
// alongside the raw sample
type HourItem struct {
	Time        time.Time         `json:"time"`
	Label       string            `json:"label"`
	Temperature types.Temperature `json:"temperature"`
	Weather     types.Weather     `json:"weather"`
}

// DayItem is one entry of the daily response
type DayItem struct {
	Time    time.Time         `json:"time"`
	Label   string            `json:"label"`
	High    types.Temperature `json:"high"`
	Low     types.Temperature `json:"low"`
	Weather types.Weather     `json:"weather"`
}

// snapshot fetches the dashboard state, writing a 404 when no forecast is
// available yet. Absence is the only failure mode exposed here.
func (a *App) snapshot(c *gin.Context) (*weather.Forecast, bool) {
	_, located, forecast := a.dashboard.Snapshot()
	if !located {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location fix yet"})
		return nil, false
	}
	if forecast == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no forecast available"})
		return nil, false
	}
	return forecast, true
}

func (a *App) handleGetCurrent(c *gin.Context) {
	forecast, ok := a.snapshot(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coords":     forecast.Coords,
		"timezone":   forecast.Timezone,
		"fetched_at": forecast.FetchedAt,
		"current":    forecast.Current,
	})
}

func (a *App) handleGetHourly(c *gin.Context) {
	var input GetHourlyInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Hours == 0 {
		input.Hours = a.cfg.App.HourlyWindow
	}

	forecast, ok := a.snapshot(c)
	if !ok {
		return
	}

	window := weather.SelectWindow(forecast.Hourly, time.Now(), input.Hours)
	items := make([]HourItem, 0, len(window))
	for _, sample := range window {
		items = append(items, HourItem{
			Time:        sample.Time,
			Label:       weather.FormatAbbreviatedHour(sample.Time, forecast.Location),
			Temperature: sample.Temperature,
			Weather:     sample.Weather,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"coords":   forecast.Coords,
		"timezone": forecast.Timezone,
		"hours":    items,
	})
}

func (a *App) handleGetDaily(c *gin.Context) {
	forecast, ok := a.snapshot(c)
	if !ok {
		return
	}

	items := make([]DayItem, 0, len(forecast.Daily))
	for _, day := range forecast.Daily {
		items = append(items, DayItem{
			Time:    day.Time,
			Label:   weather.FormatAbbreviatedWeekday(day.Time, forecast.Location),
			High:    day.High,
			Low:     day.Low,
			Weather: day.Weather,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"coords":   forecast.Coords,
		"timezone": forecast.Timezone,
		"days":     items,
	})
}
