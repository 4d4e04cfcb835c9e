package response

import (
	"time"

	"luxora-booking/internal/usecase/queries"
)

type RoomResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	RoomType    string    `json:"roomType"`
	ImageURL    string    `json:"imageUrl"`
	MaxGuests   int       `json:"maxGuests"`
	Amenities   []string  `json:"amenities"`
	TotalRooms  int       `json:"totalRooms"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SeedResponse struct {
	Message string `json:"message"`
	Created int    `json:"created"`
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomResponse {
	amenities := v.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &RoomResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Description: v.Description,
		Price:       amount(v.PricePerNightCents),
		RoomType:    v.RoomType,
		ImageURL:    v.ImageURL,
		MaxGuests:   v.MaxGuests,
		Amenities:   amenities,
		TotalRooms:  v.TotalUnits,
		IsActive:    v.IsActive(),
		CreatedAt:   v.CreatedAt,
	}
}

func FromRoomTypeViews(views []*queries.RoomTypeView) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromRoomTypeView(v))
	}
	return out
}
