package request

import (
	"encoding/json"
	"strings"

	"luxora-booking/internal/domain/pricing"
	"luxora-booking/internal/domain/roomtype"
	"luxora-booking/internal/pkg/patch"
)

// Amenities accepts either a JSON list of strings or a single
// comma-separated string. Blank entries are dropped.
type Amenities []string

func (a *Amenities) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = roomtype.NormalizeAmenities(list)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = roomtype.SplitAmenities(s)
	return nil
}

type CreateRoomRequest struct {
	Name        string    `json:"name" binding:"required,min=2,max=120"`
	Description string    `json:"description" binding:"required,min=10"`
	Price       float64   `json:"price" binding:"required,gt=0,max=1000000"`
	RoomType    string    `json:"room_type" binding:"required,min=2,max=30"`
	ImageURL    string    `json:"image_url" binding:"required,min=5"`
	MaxGuests   *int      `json:"max_guests,omitempty" binding:"omitempty,min=1,max=20"`
	Amenities   Amenities `json:"amenities,omitempty"`
	TotalRooms  *int      `json:"total_rooms,omitempty" binding:"omitempty,min=1,max=999"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

func (r CreateRoomRequest) ToDomain() (roomtype.Attributes, error) {
	price, err := pricing.FromAmount(r.Price)
	if err != nil {
		return roomtype.Attributes{}, err
	}
	return roomtype.Attributes{
		Name:          strings.TrimSpace(r.Name),
		Description:   strings.TrimSpace(r.Description),
		PricePerNight: price,
		Label:         strings.TrimSpace(r.RoomType),
		ImageURL:      strings.TrimSpace(r.ImageURL),
		MaxGuests:     patch.Coalesce(r.MaxGuests, roomtype.DefaultMaxGuests),
		Amenities:     roomtype.NormalizeAmenities(r.Amenities),
		TotalUnits:    patch.Coalesce(r.TotalRooms, roomtype.DefaultTotalUnits),
		Status:        roomtype.StatusFromActive(patch.Coalesce(r.IsActive, true)),
	}, nil
}

type UpdateRoomRequest struct {
	Name        *string    `json:"name,omitempty" binding:"omitempty,min=2,max=120"`
	Description *string    `json:"description,omitempty" binding:"omitempty,min=10"`
	Price       *float64   `json:"price,omitempty" binding:"omitempty,gt=0,max=1000000"`
	RoomType    *string    `json:"room_type,omitempty" binding:"omitempty,min=2,max=30"`
	ImageURL    *string    `json:"image_url,omitempty" binding:"omitempty,min=5"`
	MaxGuests   *int       `json:"max_guests,omitempty" binding:"omitempty,min=1,max=20"`
	Amenities   *Amenities `json:"amenities,omitempty"`
	TotalRooms  *int       `json:"total_rooms,omitempty" binding:"omitempty,min=1,max=999"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (r UpdateRoomRequest) ToDomain() (roomtype.Patch, error) {
	p := roomtype.Patch{
		Name:        patch.Trimmed(r.Name),
		Description: patch.Trimmed(r.Description),
		Label:       patch.Trimmed(r.RoomType),
		ImageURL:    patch.Trimmed(r.ImageURL),
		MaxGuests:   r.MaxGuests,
		TotalUnits:  r.TotalRooms,
	}
	if r.Price != nil {
		price, err := pricing.FromAmount(*r.Price)
		if err != nil {
			return roomtype.Patch{}, err
		}
		p.PricePerNight = &price
	}
	if r.Amenities != nil {
		items := roomtype.NormalizeAmenities(*r.Amenities)
		p.Amenities = &items
	}
	if r.IsActive != nil {
		status := roomtype.StatusFromActive(*r.IsActive)
		p.Status = &status
	}
	return p, nil
}
