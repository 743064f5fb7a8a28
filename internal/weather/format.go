package weather

import (
	"strings"
	"time"
)

// FormatAbbreviatedHour renders a timestamp as a 12-hour clock label with no
// minutes, e.g. "2PM" or "12AM". The label is computed in loc; a nil loc
// means UTC.
func FormatAbbreviatedHour(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("3PM")
}

// FormatAbbreviatedWeekday renders a timestamp as a 3-letter upper-case
// weekday label, e.g. "MON". The label is computed in loc; a nil loc means
// UTC.
func FormatAbbreviatedWeekday(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return strings.ToUpper(t.In(loc).Format("Mon"))
}
