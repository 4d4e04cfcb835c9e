package booking

import (
	"luxora-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

// Inventory is the slice of a room type the availability rule needs.
type Inventory struct {
	RoomTypeID    uuid.UUID
	TotalUnits    int
	PricePerNight pricing.Money
}

// Assessment is the outcome of checking a stay against a room type's
// inventory and its confirmed bookings.
type Assessment struct {
	Occupied  int
	Remaining int
	Quote     pricing.Quote
}

func (a Assessment) Available() bool {
	return a.Remaining > 0
}

// Assess computes remaining units and the quote for stay, given the number
// of confirmed bookings that overlap it.
func Assess(inv Inventory, stay Stay, occupied int, calc pricing.PriceCalculator) Assessment {
	remaining := inv.TotalUnits - occupied
	if remaining < 0 {
		remaining = 0
	}
	return Assessment{
		Occupied:  occupied,
		Remaining: remaining,
		Quote:     calc.Quote(inv.PricePerNight, stay.Nights()),
	}
}

// CountOverlapping counts the bookings in the list that occupy inventory and
// overlap stay. It mirrors the database overlap query.
func CountOverlapping(stay Stay, bookings []*Booking) int {
	n := 0
	for _, b := range bookings {
		if b.Status().Occupies() && b.Stay().Overlaps(stay) {
			n++
		}
	}
	return n
}
