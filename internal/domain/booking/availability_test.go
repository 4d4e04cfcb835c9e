//go:build unit

package booking_test

import (
	"testing"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventory(t *testing.T, units int, cents int64) booking.Inventory {
	t.Helper()
	rate, err := pricing.NewMoney(cents)
	require.NoError(t, err)
	return booking.Inventory{RoomTypeID: uuid.New(), TotalUnits: units, PricePerNight: rate}
}

func stored(checkIn, checkOut int, status booking.Status) *booking.Booking {
	return booking.ReconstructBooking(uuid.New(), "LUX000001",
		booking.Guest{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+44 20 7946 0000"},
		uuid.New(), nil, booking.ReconstructStay(day(checkIn), day(checkOut)), 1, pricing.Quote{},
		status, "", today, today)
}

func TestAssess(t *testing.T) {
	calc := pricing.NewNightlyPriceCalculator()

	cases := []struct {
		name      string
		units     int
		cents     int64
		checkIn   int
		checkOut  int
		occupied  int
		available bool
		remaining int
		nights    int
		total     int64
	}{
		{name: "empty suite", units: 3, cents: 35000, checkIn: 10, checkOut: 13, occupied: 0, available: true, remaining: 3, nights: 3, total: 105000},
		{name: "last unit", units: 3, cents: 35000, checkIn: 10, checkOut: 13, occupied: 2, available: true, remaining: 1, nights: 3, total: 105000},
		{name: "one of two taken", units: 2, cents: 12000, checkIn: 10, checkOut: 12, occupied: 1, available: true, remaining: 1, nights: 2, total: 24000},
		{name: "fully booked", units: 2, cents: 12000, checkIn: 10, checkOut: 12, occupied: 2, available: false, remaining: 0, nights: 2, total: 24000},
		{name: "overbooked data clamps to zero", units: 3, cents: 35000, checkIn: 10, checkOut: 13, occupied: 5, available: false, remaining: 0, nights: 3, total: 105000},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := booking.Assess(inventory(t, c.units, c.cents), mustStay(t, day(c.checkIn), day(c.checkOut)), c.occupied, calc)

			assert.Equal(t, c.available, a.Available())
			assert.Equal(t, c.remaining, a.Remaining)
			assert.Equal(t, c.nights, a.Quote.Nights)
			assert.Equal(t, c.total, a.Quote.Total.Cents())
		})
	}
}

func TestCountOverlapping(t *testing.T) {
	stay := mustStay(t, day(10), day(13))

	cases := []struct {
		name     string
		existing []*booking.Booking
		want     int
	}{
		{name: "none", want: 0},
		{name: "same stay", existing: []*booking.Booking{stored(10, 13, booking.StatusConfirmed)}, want: 1},
		{name: "overlapping tail", existing: []*booking.Booking{stored(12, 15, booking.StatusConfirmed)}, want: 1},
		{name: "overlapping head", existing: []*booking.Booking{stored(9, 11, booking.StatusConfirmed)}, want: 1},
		{name: "enclosing", existing: []*booking.Booking{stored(5, 20, booking.StatusConfirmed)}, want: 1},
		{name: "ends at check-in", existing: []*booking.Booking{stored(7, 10, booking.StatusConfirmed)}, want: 0},
		{name: "starts at check-out", existing: []*booking.Booking{stored(13, 14, booking.StatusConfirmed)}, want: 0},
		{name: "cancelled never counts", existing: []*booking.Booking{stored(10, 13, booking.StatusCancelled)}, want: 0},
		{name: "pending never counts", existing: []*booking.Booking{stored(11, 12, booking.StatusPending)}, want: 0},
		{
			name: "mixed",
			existing: []*booking.Booking{
				stored(10, 12, booking.StatusConfirmed),
				stored(11, 13, booking.StatusCancelled),
				stored(11, 13, booking.StatusPending),
				stored(8, 10, booking.StatusConfirmed),
				stored(12, 14, booking.StatusConfirmed),
				stored(13, 16, booking.StatusConfirmed),
			},
			want: 2,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, booking.CountOverlapping(stay, c.existing))
		})
	}
}

func TestFourthSuiteBookingIsRejected(t *testing.T) {
	stay := mustStay(t, day(10), day(13))
	existing := []*booking.Booking{
		stored(10, 13, booking.StatusConfirmed),
		stored(10, 13, booking.StatusConfirmed),
		stored(10, 13, booking.StatusConfirmed),
	}

	occupied := booking.CountOverlapping(stay, existing)
	a := booking.Assess(inventory(t, 3, 35000), stay, occupied, pricing.NewNightlyPriceCalculator())

	assert.Equal(t, 3, occupied)
	assert.False(t, a.Available())
}
