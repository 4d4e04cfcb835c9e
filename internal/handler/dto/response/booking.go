package response

import (
	"time"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/domain/pricing"
	"luxora-booking/internal/usecase/queries"
)

const (
	MessageBookingCreated   = "Booking created successfully"
	MessageBookingCancelled = "Booking cancelled successfully"
)

type AvailableRoomResponse struct {
	Name           string  `json:"name"`
	RoomType       string  `json:"roomType"`
	PricePerNight  float64 `json:"pricePerNight"`
	TotalNights    int     `json:"totalNights"`
	TotalPrice     float64 `json:"totalPrice"`
	AvailableUnits int     `json:"availableUnits"`
}

type AvailabilityResponse struct {
	Available bool                   `json:"available"`
	Room      *AvailableRoomResponse `json:"room,omitempty"`
	Message   string                 `json:"message,omitempty"`
}

type BookingResponse struct {
	ID              string    `json:"id"`
	BookingCode     string    `json:"bookingCode"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	RoomType        string    `json:"roomType"`
	RoomName        *string   `json:"roomName"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	Guests          int       `json:"guests"`
	PricePerNight   float64   `json:"pricePerNight"`
	TotalNights     int       `json:"totalNights"`
	TotalPrice      float64   `json:"totalPrice"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"specialRequests"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CreateBookingResponse struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

type CancelBookingResponse struct {
	Message     string `json:"message"`
	BookingCode string `json:"bookingCode"`
	Status      string `json:"status"`
}

// stay dates are wall-clock values; they are rendered without a zone
const stayLayout = "2006-01-02T15:04:05"

func amount(cents int64) float64 {
	m, err := pricing.NewMoney(cents)
	if err != nil {
		return 0
	}
	return m.Amount()
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	resp := &AvailabilityResponse{Available: v.Available, Message: v.Message}
	if v.Room != nil {
		resp.Room = &AvailableRoomResponse{
			Name:           v.Room.Name,
			RoomType:       v.Room.RoomType,
			PricePerNight:  amount(v.Room.PricePerNightCents),
			TotalNights:    v.Room.TotalNights,
			TotalPrice:     amount(v.Room.TotalPriceCents),
			AvailableUnits: v.Room.AvailableUnits,
		}
	}
	return resp
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID.String(),
		BookingCode:     v.Code,
		Name:            v.GuestName,
		Email:           v.GuestEmail,
		Phone:           v.GuestPhone,
		RoomType:        v.RoomType,
		RoomName:        v.RoomName,
		CheckIn:         v.CheckIn.Format(stayLayout),
		CheckOut:        v.CheckOut.Format(stayLayout),
		Guests:          v.Guests,
		PricePerNight:   amount(v.PricePerNightCents),
		TotalNights:     v.TotalNights,
		TotalPrice:      amount(v.TotalPriceCents),
		Status:          v.Status,
		SpecialRequests: v.SpecialRequests,
		CreatedAt:       v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromBookingView(v))
	}
	return out
}

func FromCancelledBooking(code string, status booking.Status) *CancelBookingResponse {
	return &CancelBookingResponse{
		Message:     MessageBookingCancelled,
		BookingCode: code,
		Status:      status.String(),
	}
}
