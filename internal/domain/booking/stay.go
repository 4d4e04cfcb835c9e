package booking

import (
	"time"

	"luxora-booking/internal/pkg/errs"
)

const night = 24 * time.Hour

// Stay is the half-open interval [checkIn, checkOut) a booking occupies.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStay validates a requested stay against today's calendar date:
// check-in must fall on a later day than today, check-out must come after
// check-in and the stay must cover at least one whole night.
func NewStay(checkIn, checkOut, today time.Time) (Stay, error) {
	if !CalendarDate(checkIn).After(CalendarDate(today)) {
		return Stay{}, errs.Mark(errs.New("check-in date must be in the future"), errs.ErrInvalidDateRange)
	}
	if !checkOut.After(checkIn) {
		return Stay{}, errs.Mark(errs.New("check-out date must be after check-in date"), errs.ErrInvalidDateRange)
	}

	s := Stay{checkIn: checkIn, checkOut: checkOut}
	if s.Nights() < 1 {
		return Stay{}, errs.Mark(errs.New("stay must cover at least one night"), errs.ErrInvalidDateRange)
	}
	return s, nil
}

// ParseStay parses both dates and validates the resulting stay.
func ParseStay(checkInText, checkOutText string, today time.Time) (Stay, error) {
	checkIn, err := ParseDate(checkInText)
	if err != nil {
		return Stay{}, errs.Wrap(err, "check-in")
	}
	checkOut, err := ParseDate(checkOutText)
	if err != nil {
		return Stay{}, errs.Wrap(err, "check-out")
	}
	return NewStay(checkIn, checkOut, today)
}

// ReconstructStay rebuilds a persisted stay without re-validating it.
func ReconstructStay(checkIn, checkOut time.Time) Stay {
	return Stay{checkIn: checkIn, checkOut: checkOut}
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

// Nights is the number of whole days between check-in and check-out.
func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn) / night)
}

// Overlaps reports whether two stays share any instant. Touching endpoints
// (one check-out equal to the other's check-in) do not overlap.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}
