package queries

import (
	"time"

	"github.com/google/uuid"
)

// Messages returned with an unavailable result. They are part of the
// public contract of the availability endpoint.
const (
	MessageRoomTypeNotFound = "Room type not found"
	MessageNotAvailable     = "Room not available for selected dates"
)

// UnknownRoomTypeLabel is shown for bookings whose room type is no longer active.
const UnknownRoomTypeLabel = "Unknown"

// AvailabilityView is the outcome of an availability check. Room is set only
// when Available is true; Message only when it is false.
type AvailabilityView struct {
	Available bool
	Room      *AvailableRoomView
	Message   string
}

type AvailableRoomView struct {
	RoomTypeID         uuid.UUID
	Name               string
	RoomType           string
	PricePerNightCents int64
	TotalNights        int
	TotalPriceCents    int64
	AvailableUnits     int
}

// RoomTypeView represents read-optimized room type data
type RoomTypeView struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	PricePerNightCents int64
	RoomType           string
	ImageURL           string
	MaxGuests          int
	Amenities          []string
	TotalUnits         int
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (v *RoomTypeView) IsActive() bool {
	return v.Status == "active"
}

// BookingView is a booking enriched at read time with its room type's
// label and name. RoomType falls back to UnknownRoomTypeLabel and RoomName
// is nil when the room type is missing or inactive.
type BookingView struct {
	ID                 uuid.UUID
	Code               string
	GuestName          string
	GuestEmail         string
	GuestPhone         string
	RoomTypeID         uuid.UUID
	RoomType           string
	RoomName           *string
	UserID             *uuid.UUID
	CheckIn            time.Time
	CheckOut           time.Time
	Guests             int
	PricePerNightCents int64
	TotalNights        int
	TotalPriceCents    int64
	Status             string
	SpecialRequests    string
	CreatedAt          time.Time
}

// UserView represents read-optimized account data
type UserView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}
