//go:build unit

package booking_test

import (
	"testing"
	"time"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2099, 2, 1, 15, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2099, 2, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) booking.Stay {
	t.Helper()
	s, err := booking.NewStay(checkIn, checkOut, today)
	require.NoError(t, err)
	return s
}

func TestNewStay(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		nights   int
		errIs    error
	}{
		{name: "one night tomorrow", checkIn: day(2), checkOut: day(3), nights: 1},
		{name: "three nights", checkIn: day(5), checkOut: day(8), nights: 3},
		{name: "partial day floors", checkIn: day(5), checkOut: day(7).Add(10 * time.Hour), nights: 2},
		{name: "check-in today", checkIn: day(1), checkOut: day(3), errIs: errs.ErrInvalidDateRange},
		{name: "check-in later today still rejected", checkIn: day(1).Add(20 * time.Hour), checkOut: day(3), errIs: errs.ErrInvalidDateRange},
		{name: "check-in in the past", checkIn: day(1).AddDate(0, 0, -3), checkOut: day(3), errIs: errs.ErrInvalidDateRange},
		{name: "same dates", checkIn: day(5), checkOut: day(5), errIs: errs.ErrInvalidDateRange},
		{name: "check-out before check-in", checkIn: day(6), checkOut: day(5), errIs: errs.ErrInvalidDateRange},
		{name: "less than a night", checkIn: day(5), checkOut: day(5).Add(12 * time.Hour), errIs: errs.ErrInvalidDateRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := booking.NewStay(c.checkIn, c.checkOut, today)
			if c.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, c.errIs))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.nights, s.Nights())
		})
	}
}

func TestParseStay(t *testing.T) {
	t.Run("valid dates", func(t *testing.T) {
		s, err := booking.ParseStay("2099-02-05", "2099-02-07", today)
		require.NoError(t, err)
		assert.Equal(t, 2, s.Nights())
	})

	t.Run("bad check-in format wins over range", func(t *testing.T) {
		_, err := booking.ParseStay("05/02/2099", "2099-02-01", today)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidDateFormat))
	})

	t.Run("bad check-out format", func(t *testing.T) {
		_, err := booking.ParseStay("2099-02-05", "", today)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidDateFormat))
	})

	t.Run("equal dates", func(t *testing.T) {
		_, err := booking.ParseStay("2099-02-05", "2099-02-05", today)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidDateRange))
	})
}

func TestStayOverlaps(t *testing.T) {
	base := mustStay(t, day(10), day(12))

	cases := []struct {
		name  string
		other booking.Stay
		want  bool
	}{
		{name: "identical", other: mustStay(t, day(10), day(12)), want: true},
		{name: "starts inside", other: mustStay(t, day(11), day(14)), want: true},
		{name: "ends inside", other: mustStay(t, day(8), day(11)), want: true},
		{name: "contains", other: mustStay(t, day(9), day(15)), want: true},
		{name: "check-out touches check-in", other: mustStay(t, day(8), day(10)), want: false},
		{name: "check-in touches check-out", other: mustStay(t, day(12), day(14)), want: false},
		{name: "disjoint", other: mustStay(t, day(20), day(22)), want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Overlaps(c.other))
			assert.Equal(t, c.want, c.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}
