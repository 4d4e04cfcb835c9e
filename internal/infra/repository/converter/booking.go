package converter

import (
	"fmt"
	"math"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/domain/pricing"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	q := b.Quote()
	g := b.Guest()
	return sqlc.CreateBookingParams{
		ID:                 b.ID(),
		Code:               b.Code(),
		GuestName:          g.Name,
		GuestEmail:         g.Email,
		GuestPhone:         g.Phone,
		RoomTypeID:         b.RoomTypeID(),
		UserID:             pgconv.UUIDPtrToPgtype(b.UserID()),
		CheckIn:            pgconv.DateTimeToPgtype(b.Stay().CheckIn()),
		CheckOut:           pgconv.DateTimeToPgtype(b.Stay().CheckOut()),
		Guests:             toInt32(b.Guests()),
		PricePerNightCents: q.PricePerNight.Cents(),
		TotalNights:        toInt32(q.Nights),
		TotalPriceCents:    q.Total.Cents(),
		Status:             b.Status().String(),
		SpecialRequests:    b.SpecialRequests(),
		CreatedAt:          pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingStatusToInfra(b *booking.Booking) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromInfra(row sqlc.Bookings) (*booking.Booking, error) {
	status := booking.Status(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown booking status %q", row.Status)
	}
	rate, err := pricing.NewMoney(row.PricePerNightCents)
	if err != nil {
		return nil, err
	}
	total, err := pricing.NewMoney(row.TotalPriceCents)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		row.ID,
		row.Code,
		booking.Guest{Name: row.GuestName, Email: row.GuestEmail, Phone: row.GuestPhone},
		row.RoomTypeID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		booking.ReconstructStay(pgconv.DateTimeFromPgtype(row.CheckIn), pgconv.DateTimeFromPgtype(row.CheckOut)),
		int(row.Guests),
		pricing.Quote{PricePerNight: rate, Nights: int(row.TotalNights), Total: total},
		status,
		row.SpecialRequests,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func toInt32(n int) int32 {
	if n > math.MaxInt32 || n < math.MinInt32 {
		panic(fmt.Sprintf("value out of int32 range: %d", n))
	}
	return int32(n)
}
