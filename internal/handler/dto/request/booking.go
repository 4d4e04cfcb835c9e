package request

import (
	"strings"

	"luxora-booking/internal/domain/booking"
)

// Dates are plain strings so that malformed input reaches the date parser
// and is reported as INVALID_DATE_FORMAT rather than a binding error.
type CheckAvailabilityRequest struct {
	RoomType string `json:"room_type" binding:"required,min=2,max=30"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type CreateBookingRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=120"`
	Email    string `json:"email" binding:"required,max=254"`
	Phone    string `json:"phone" binding:"required,min=6,max=30"`
	RoomType string `json:"room_type" binding:"required,min=2,max=30"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests" binding:"required,min=1,max=20"`

	SpecialRequests *string `json:"special_requests,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateBookingRequest) Guest() booking.Guest {
	return booking.Guest{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.Phone),
	}
}

func (r CreateBookingRequest) Label() string {
	return strings.TrimSpace(r.RoomType)
}

func (r CreateBookingRequest) GetSpecialRequests() string {
	if r.SpecialRequests == nil {
		return ""
	}
	return strings.TrimSpace(*r.SpecialRequests)
}
