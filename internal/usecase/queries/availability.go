package queries

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/domain/pricing"
	"luxora-booking/internal/infra"
	"luxora-booking/internal/pkg/clock"
)

type AvailabilityQueries interface {
	// CheckAvailability reports whether the room type has a free unit for
	// the stay. Unknown room types and full inventory are reported in the
	// view, not as errors; malformed or invalid dates are errors.
	CheckAvailability(ctx context.Context, roomType, checkIn, checkOut string) (*AvailabilityView, error)
}

type OccupancyReadStore interface {
	CountOverlappingConfirmed(ctx context.Context, roomTypeID uuid.UUID, stay booking.Stay) (int, error)
}

type availabilityQueriesImpl struct {
	rooms     RoomTypeReadStore
	occupancy OccupancyReadStore
	prices    pricing.PriceCalculator
	clock     clock.Clock
}

func NewAvailabilityQueries(
	rooms RoomTypeReadStore,
	occupancy OccupancyReadStore,
	prices pricing.PriceCalculator,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		rooms:     rooms,
		occupancy: occupancy,
		prices:    prices,
		clock:     clk,
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, roomType, checkIn, checkOut string) (*AvailabilityView, error) {
	stay, err := booking.ParseStay(checkIn, checkOut, clock.Today(q.clock))
	if err != nil {
		return nil, err
	}

	room, err := q.rooms.FindActiveByLabel(ctx, roomType)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &AvailabilityView{Available: false, Message: MessageRoomTypeNotFound}, nil
		}
		return nil, err
	}

	occupied, err := q.occupancy.CountOverlappingConfirmed(ctx, room.ID, stay)
	if err != nil {
		return nil, err
	}

	rate, err := pricing.NewMoney(room.PricePerNightCents)
	if err != nil {
		return nil, err
	}
	assessment := booking.Assess(booking.Inventory{
		RoomTypeID:    room.ID,
		TotalUnits:    room.TotalUnits,
		PricePerNight: rate,
	}, stay, occupied, q.prices)

	if !assessment.Available() {
		slog.Debug("room type fully booked",
			"room_type", room.RoomType,
			"occupied", occupied,
			"total_units", room.TotalUnits)
		return &AvailabilityView{Available: false, Message: MessageNotAvailable}, nil
	}

	return &AvailabilityView{
		Available: true,
		Room: &AvailableRoomView{
			RoomTypeID:         room.ID,
			Name:               room.Name,
			RoomType:           room.RoomType,
			PricePerNightCents: assessment.Quote.PricePerNight.Cents(),
			TotalNights:        assessment.Quote.Nights,
			TotalPriceCents:    assessment.Quote.Total.Cents(),
			AvailableUnits:     assessment.Remaining,
		},
	}, nil
}
