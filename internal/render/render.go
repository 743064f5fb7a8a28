package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"skycast/internal/weather"
)

const chartWidth = 24

// Dashboard writes the full text dashboard for a forecast: current
// conditions, the upcoming hourly strip, the daily list, and a temperature
// bar chart. A nil forecast renders a placeholder instead of an error.
func Dashboard(w io.Writer, f *weather.Forecast, now time.Time, hours int) {
	if f == nil {
		fmt.Fprintln(w, "no forecast data")
		return
	}

	header(w, f)
	currentBlock(w, f.Current)
	hourlyStrip(w, weather.SelectWindow(f.Hourly, now, hours), f.Location)
	dailyList(w, f.Daily, f.Location)
	temperatureChart(w, f.Daily, f.Location)
}

func header(w io.Writer, f *weather.Forecast) {
	fmt.Fprintf(w, "skycast  %s  %s\n\n", f.Coords.String(), f.Timezone)
}

func currentBlock(w io.Writer, c weather.CurrentConditions) {
	fmt.Fprintf(w, "%s  %.0f°C / %.0f°F  %s\n",
		c.Weather.Symbol,
		c.Temperature.Celsius,
		c.Temperature.Fahrenheit,
		c.Weather.Description,
	)
	fmt.Fprintf(w, "wind %.0f km/h %s   humidity %.0f%%\n\n",
		c.Wind.SpeedInKph,
		c.Wind.DirectionCardinal,
		c.RelativeHumidity,
	)
}

// hourlyStrip renders the upcoming hours as three aligned rows: hour label,
// condition symbol, temperature.
func hourlyStrip(w io.Writer, window []weather.HourSample, loc *time.Location) {
	if len(window) == 0 {
		fmt.Fprint(w, "no hourly data\n\n")
		return
	}

	var labels, symbols, temps strings.Builder
	for _, sample := range window {
		labels.WriteString(fmt.Sprintf("%-6s", weather.FormatAbbreviatedHour(sample.Time, loc)))
		symbols.WriteString(fmt.Sprintf("%-6s", sample.Weather.Symbol))
		temps.WriteString(fmt.Sprintf("%-6s", fmt.Sprintf("%.0f°", sample.Temperature.Celsius)))
	}
	fmt.Fprintln(w, strings.TrimRight(labels.String(), " "))
	fmt.Fprintln(w, strings.TrimRight(symbols.String(), " "))
	fmt.Fprintln(w, strings.TrimRight(temps.String(), " "))
	fmt.Fprintln(w)
}

func dailyList(w io.Writer, days []weather.DailyForecast, loc *time.Location) {
	for _, day := range days {
		fmt.Fprintf(w, "%s  %s  %3.0f° / %3.0f°  %s\n",
			weather.FormatAbbreviatedWeekday(day.Time, loc),
			day.Weather.Symbol,
			day.High.Celsius,
			day.Low.Celsius,
			day.Weather.Description,
		)
	}
	fmt.Fprintln(w)
}

// temperatureChart draws one horizontal bar per day, spanning that day's
// low-to-high range on a shared scale across the whole series.
func temperatureChart(w io.Writer, days []weather.DailyForecast, loc *time.Location) {
	if len(days) == 0 {
		return
	}

	min, max := days[0].Low.Celsius, days[0].High.Celsius
	for _, day := range days[1:] {
		if day.Low.Celsius < min {
			min = day.Low.Celsius
		}
		if day.High.Celsius > max {
			max = day.High.Celsius
		}
	}

	span := max - min
	if span <= 0 {
		span = 1
	}

	for _, day := range days {
		start := int((day.Low.Celsius - min) / span * chartWidth)
		end := int((day.High.Celsius - min) / span * chartWidth)
		if end <= start {
			end = start + 1
		}
		if end > chartWidth {
			end = chartWidth
		}

		bar := strings.Repeat(" ", start) +
			strings.Repeat("█", end-start) +
			strings.Repeat(" ", chartWidth-end)
		fmt.Fprintf(w, "%s  %3.0f° |%s| %3.0f°\n",
			weather.FormatAbbreviatedWeekday(day.Time, loc),
			day.Low.Celsius,
			bar,
			day.High.Celsius,
		)
	}
}
