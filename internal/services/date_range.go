package services

import (
	"strings"
	"time"
)

var dateRangeLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ParseDateRange validates a start/end date pair shared by the create and
// edit paths. Both values are required, must parse as calendar dates and the
// end must not precede the start. Results are normalized to midnight UTC.
func ParseDateRange(startRaw string, endRaw string) (time.Time, time.Time, error) {
	if strings.TrimSpace(startRaw) == "" || strings.TrimSpace(endRaw) == "" {
		return time.Time{}, time.Time{}, NewValidationError("startDate and endDate required")
	}

	start, startOK := parseCalendarDate(startRaw)
	end, endOK := parseCalendarDate(endRaw)
	if !startOK || !endOK {
		return time.Time{}, time.Time{}, NewValidationError("Invalid dates")
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, NewValidationError("endDate must be >= startDate")
	}

	return start, end, nil
}

func parseCalendarDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateRangeLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		return midnightUTC(parsed), true
	}
	return time.Time{}, false
}

func midnightUTC(value time.Time) time.Time {
	day := value.UTC()
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
