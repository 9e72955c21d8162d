package api

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, errors.New("empty date")
	}
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// parseMonthParam accepts YYYY-MM and returns the first day of that month.
func parseMonthParam(raw string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, errors.New("empty month")
	}
	parsed, err := time.ParseInLocation("2006-01", trimmed, location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

func parseIDParam(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimestampParam(raw string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, trimmed, location)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("invalid timestamp")
}

// parseOptionalDayParam distinguishes "absent" from "malformed": absent
// means an open-ended range, malformed is a client error.
func parseOptionalDayParam(raw string, location *time.Location) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parsed, err := parseDayParam(raw, location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
