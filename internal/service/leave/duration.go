package leave

import (
	"time"

	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
)

const hoursPerWorkday = 8

// TotalDays converts a requested duration into a fractional day count.
//
// Half days are always 0.5. Hourly requests must fall in (0, 8] and map to
// hours/8. Full-day ranges count weekdays only, inclusive of both endpoints;
// a missing end date means a single-day request. The result is the
// authoritative value stored on the request; whatever a client computed for
// itself is ignored.
func TotalDays(durationType leave.DurationType, start, end time.Time, hours *float64) (float64, error) {
	switch durationType {
	case leave.DurationHalfDay:
		return 0.5, nil

	case leave.DurationHourly:
		if hours == nil || *hours <= 0 || *hours > hoursPerWorkday {
			return 0, leave.ErrInvalidHours
		}
		return *hours / hoursPerWorkday, nil

	default:
		return weekdaysBetween(start, end)
	}
}

// weekdaysBetween counts Monday-Friday days in [start, end], both normalized
// to calendar-day granularity. Saturdays and Sundays inside the span do not
// count, so a weekend-only range yields zero and fails validation.
func weekdaysBetween(start, end time.Time) (float64, error) {
	start = truncateToDay(start)
	if end.IsZero() {
		end = start
	} else {
		end = truncateToDay(end)
	}

	if end.Before(start) {
		return 0, leave.ErrEndBeforeStart
	}

	var days float64
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		days++
	}

	if days <= 0 {
		return 0, leave.ErrNoWorkingDays
	}
	return days, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
