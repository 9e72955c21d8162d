package services

import (
	"strconv"
	"strings"
	"time"
)

// DefaultHour substitutes for routine times that are missing or unparseable.
const DefaultHour = 8

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// ParseHour extracts an hour of day from free-form time text. Separators "."
// and " " are treated like ":"; the token before the first separator must be
// a number in [0,23] or the default hour is returned. AM/PM anywhere after
// the hour token adjusts it, so "8:00 PM", "8.00 pm" and "8 PM" all yield 20.
func ParseHour(raw string) int {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		return DefaultHour
	}
	normalized = strings.ReplaceAll(normalized, ".", ":")
	normalized = strings.ReplaceAll(normalized, " ", ":")

	tokens := strings.Split(normalized, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(tokens[0]))
	if err != nil || hour < 0 || hour > 23 {
		return DefaultHour
	}

	remainder := strings.ToUpper(strings.Join(tokens[1:], ":"))
	if strings.Contains(remainder, "PM") && hour < 12 {
		hour += 12
	}
	if strings.Contains(remainder, "AM") && hour == 12 {
		hour = 0
	}

	return hour
}

var lenientDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"02.01.2006",
}

// ParseLenientDate parses the date formats observed in historical records.
// The boolean result is the only absence signal; callers must branch on it
// rather than testing for a zero time.
func ParseLenientDate(raw string, location *time.Location) (time.Time, bool) {
	if location == nil {
		location = time.UTC
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, layout := range lenientDateLayouts {
		parsed, err := time.ParseInLocation(layout, trimmed, location)
		if err != nil {
			continue
		}
		return DateAtLocation(parsed, location), true
	}
	return time.Time{}, false
}
