package booking

import (
	"errors"
	"strings"
	"time"

	"luxora-booking/internal/domain/pricing"
	"luxora-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuests = errors.New("guests must be at least 1")
	ErrInvalidCode   = errors.New("invalid booking code")
	ErrInvalidGuest  = errors.New("guest name, email and phone are required")
)

// Guest is the contact captured on a booking. Values are free text.
type Guest struct {
	Name  string
	Email string
	Phone string
}

// Draft is a booking request after its stay has been validated.
type Draft struct {
	Guest           Guest
	RoomTypeID      uuid.UUID
	UserID          *uuid.UUID
	Stay            Stay
	Guests          int
	SpecialRequests string
}

type Booking struct {
	id              uuid.UUID
	code            string
	guest           Guest
	roomTypeID      uuid.UUID
	userID          *uuid.UUID
	stay            Stay
	guests          int
	quote           pricing.Quote
	status          Status
	specialRequests string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking builds a confirmed booking from a draft, its assigned code and
// the quote computed for the draft's stay.
func NewBooking(code string, d Draft, quote pricing.Quote, now time.Time) (*Booking, error) {
	if !IsValidCode(code) {
		return nil, ErrInvalidCode
	}
	if d.Guests < 1 {
		return nil, errs.Mark(ErrInvalidGuests, errs.ErrDomainValidation)
	}
	if strings.TrimSpace(d.Guest.Name) == "" || strings.TrimSpace(d.Guest.Email) == "" || strings.TrimSpace(d.Guest.Phone) == "" {
		return nil, errs.Mark(ErrInvalidGuest, errs.ErrDomainValidation)
	}

	return &Booking{
		id:              uuid.New(),
		code:            code,
		guest:           d.Guest,
		roomTypeID:      d.RoomTypeID,
		userID:          d.UserID,
		stay:            d.Stay,
		guests:          d.Guests,
		quote:           quote,
		status:          StatusConfirmed,
		specialRequests: d.SpecialRequests,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	code string,
	guest Guest,
	roomTypeID uuid.UUID,
	userID *uuid.UUID,
	stay Stay,
	guests int,
	quote pricing.Quote,
	status Status,
	specialRequests string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		code:            code,
		guest:           guest,
		roomTypeID:      roomTypeID,
		userID:          userID,
		stay:            stay,
		guests:          guests,
		quote:           quote,
		status:          status,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Cancel moves the booking to cancelled. Cancelled is terminal, so a second
// call fails and leaves the booking unchanged.
func (b *Booking) Cancel(now time.Time) error {
	if b.status.IsTerminal() {
		return errs.Mark(errs.Newf("booking %s is already cancelled", b.code), errs.ErrBookingAlreadyCancelled)
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) IsCancelled() bool { return b.status == StatusCancelled }

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) Code() string            { return b.code }
func (b *Booking) Guest() Guest            { return b.guest }
func (b *Booking) RoomTypeID() uuid.UUID   { return b.roomTypeID }
func (b *Booking) UserID() *uuid.UUID      { return b.userID }
func (b *Booking) Stay() Stay              { return b.stay }
func (b *Booking) Guests() int             { return b.guests }
func (b *Booking) Quote() pricing.Quote    { return b.quote }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) SpecialRequests() string { return b.specialRequests }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
