//go:build unit || e2e

package builder

import (
	"time"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/domain/pricing"
	reqdto "luxora-booking/internal/handler/dto/request"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/internal/pkg/pgconv"
	"luxora-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const stayDate = "2006-01-02"

type BookingBuilder struct {
	ID              uuid.UUID
	Code            string
	Name            string
	Email           string
	Phone           string
	RoomTypeID      uuid.UUID
	RoomType        string
	RoomName        *string
	UserID          *uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	PriceCents      int64
	Status          booking.Status
	SpecialRequests string
	CreatedAt       time.Time
}

// NewBookingBuilder returns a three night confirmed stay in 2099, far
// enough ahead to pass the future check-in rule under a real clock.
func NewBookingBuilder() *BookingBuilder {
	roomName := "Deluxe Double Room"
	return &BookingBuilder{
		ID:         uuid.New(),
		Code:       "LUX123456",
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Phone:      "+44 20 7946 0000",
		RoomTypeID: uuid.New(),
		RoomType:   "Double",
		RoomName:   &roomName,
		CheckIn:    time.Date(2099, 2, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2099, 2, 13, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		PriceCents: 18000,
		Status:     booking.StatusConfirmed,
		CreatedAt:  time.Date(2099, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithCode(code string) *BookingBuilder {
	b.Code = code
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithRoomType(label string) *BookingBuilder {
	b.RoomType = label
	return b
}

func (b *BookingBuilder) WithUser(id uuid.UUID) *BookingBuilder {
	b.UserID = &id
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}

func (b *BookingBuilder) nights() int {
	return booking.ReconstructStay(b.CheckIn, b.CheckOut).Nights()
}

func (b *BookingBuilder) quote() pricing.Quote {
	rate, err := pricing.NewMoney(b.PriceCents)
	if err != nil {
		panic(err)
	}
	return pricing.NewNightlyPriceCalculator().Quote(rate, b.nights())
}

// Build methods
func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		Name:     b.Name,
		Email:    b.Email,
		Phone:    b.Phone,
		RoomType: b.RoomType,
		CheckIn:  b.CheckIn.Format(stayDate),
		CheckOut: b.CheckOut.Format(stayDate),
		Guests:   b.Guests,
	}
	if b.SpecialRequests != "" {
		s := b.SpecialRequests
		req.SpecialRequests = &s
	}
	return req
}

func (b *BookingBuilder) BuildAvailabilityDTO() reqdto.CheckAvailabilityRequest {
	return reqdto.CheckAvailabilityRequest{
		RoomType: b.RoomType,
		CheckIn:  b.CheckIn.Format(stayDate),
		CheckOut: b.CheckOut.Format(stayDate),
	}
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID,
		b.Code,
		booking.Guest{Name: b.Name, Email: b.Email, Phone: b.Phone},
		b.RoomTypeID,
		b.UserID,
		booking.ReconstructStay(b.CheckIn, b.CheckOut),
		b.Guests,
		b.quote(),
		b.Status,
		b.SpecialRequests,
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	q := b.quote()
	return sqlc.Bookings{
		ID:                 b.ID,
		Code:               b.Code,
		GuestName:          b.Name,
		GuestEmail:         b.Email,
		GuestPhone:         b.Phone,
		RoomTypeID:         b.RoomTypeID,
		UserID:             pgconv.UUIDPtrToPgtype(b.UserID),
		CheckIn:            pgconv.DateTimeToPgtype(b.CheckIn),
		CheckOut:           pgconv.DateTimeToPgtype(b.CheckOut),
		Guests:             int32(b.Guests),
		PricePerNightCents: q.PricePerNight.Cents(),
		TotalNights:        int32(q.Nights),
		TotalPriceCents:    q.Total.Cents(),
		Status:             b.Status.String(),
		SpecialRequests:    b.SpecialRequests,
		CreatedAt:          pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:          pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	q := b.quote()
	return &queries.BookingView{
		ID:                 b.ID,
		Code:               b.Code,
		GuestName:          b.Name,
		GuestEmail:         b.Email,
		GuestPhone:         b.Phone,
		RoomTypeID:         b.RoomTypeID,
		RoomType:           b.RoomType,
		RoomName:           b.RoomName,
		UserID:             b.UserID,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Guests:             b.Guests,
		PricePerNightCents: q.PricePerNight.Cents(),
		TotalNights:        q.Nights,
		TotalPriceCents:    q.Total.Cents(),
		Status:             b.Status.String(),
		SpecialRequests:    b.SpecialRequests,
		CreatedAt:          b.CreatedAt,
	}
}
