package booking

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// parseDate parses a "YYYY-MM-DD" calendar day as local midnight.
func parseDate(value string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return day, nil
}

// parseClock parses an "HH:MM" 24-hour time of day into minutes from midnight.
func parseClock(value string) (int, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", value, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// formatClock renders minutes from midnight as "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// slotStart resolves a date + clock pair into an absolute local time.
func slotStart(date, clock string) (time.Time, error) {
	day, err := parseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(minutes) * time.Minute), nil
}
