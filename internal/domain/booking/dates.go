package booking

import (
	"strings"
	"time"

	"luxora-booking/internal/pkg/errs"
)

// DateLayout is the preferred wire format for stay dates.
const DateLayout = "2006-01-02"

// dateTimeLayouts are tried in order once DateLayout fails. Fractional
// seconds are accepted after any layout that ends in seconds.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z0700",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04Z0700",
	"2006-01-02T15:04:05Z07",
}

// ParseDate reads a stay date from YYYY-MM-DD or an ISO-8601 date-time.
// The result is a naive wall-clock value: any offset in the input is
// dropped and the fields are kept as written, in UTC.
func ParseDate(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, errs.Mark(errs.New("date is required"), errs.ErrInvalidDateFormat)
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return wallClock(t), nil
		}
	}

	return time.Time{}, errs.Mark(errs.Newf("cannot parse %q as a date, use YYYY-MM-DD", s), errs.ErrInvalidDateFormat)
}

// CalendarDate truncates t to midnight of its own calendar day.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
