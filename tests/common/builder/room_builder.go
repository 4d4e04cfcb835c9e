//go:build unit || e2e

package builder

import (
	"time"

	"luxora-booking/internal/domain/pricing"
	"luxora-booking/internal/domain/roomtype"
	reqdto "luxora-booking/internal/handler/dto/request"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	Label       string
	ImageURL    string
	MaxGuests   int
	Amenities   []string
	TotalUnits  int
	Status      roomtype.Status
	CreatedAt   time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:          uuid.New(),
		Name:        "Deluxe Double Room",
		Description: "A spacious room with a queen-size bed and city views.",
		PriceCents:  18000,
		Label:       "Double",
		ImageURL:    "https://images.example.com/double.jpg",
		MaxGuests:   2,
		Amenities:   []string{"WiFi", "TV"},
		TotalUnits:  2,
		Status:      roomtype.StatusActive,
		CreatedAt:   time.Date(2099, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithLabel(label string) *RoomBuilder {
	b.Label = label
	return b
}

func (b *RoomBuilder) WithTotalUnits(n int) *RoomBuilder {
	b.TotalUnits = n
	return b
}

func (b *RoomBuilder) WithPriceCents(cents int64) *RoomBuilder {
	b.PriceCents = cents
	return b
}

func (b *RoomBuilder) AsInactive() *RoomBuilder {
	b.Status = roomtype.StatusInactive
	return b
}

// Build methods
func (b *RoomBuilder) BuildCreateDTO() reqdto.CreateRoomRequest {
	maxGuests := b.MaxGuests
	totalRooms := b.TotalUnits
	active := b.Status == roomtype.StatusActive
	return reqdto.CreateRoomRequest{
		Name:        b.Name,
		Description: b.Description,
		Price:       float64(b.PriceCents) / 100,
		RoomType:    b.Label,
		ImageURL:    b.ImageURL,
		MaxGuests:   &maxGuests,
		Amenities:   reqdto.Amenities(b.Amenities),
		TotalRooms:  &totalRooms,
		IsActive:    &active,
	}
}

func (b *RoomBuilder) BuildDomain() *roomtype.RoomType {
	price, err := pricing.NewMoney(b.PriceCents)
	if err != nil {
		panic(err)
	}
	return roomtype.ReconstructRoomType(
		b.ID, b.Name, b.Description, price, b.Label, b.ImageURL,
		b.MaxGuests, b.Amenities, b.TotalUnits, b.Status, b.CreatedAt, b.CreatedAt,
	)
}

func (b *RoomBuilder) BuildInfra() sqlc.RoomTypes {
	return sqlc.RoomTypes{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		RoomType:    b.Label,
		ImageUrl:    b.ImageURL,
		MaxGuests:   int32(b.MaxGuests),
		Amenities:   b.Amenities,
		TotalUnits:  int32(b.TotalUnits),
		Status:      b.Status.String(),
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:                 b.ID,
		Name:               b.Name,
		Description:        b.Description,
		PricePerNightCents: b.PriceCents,
		RoomType:           b.Label,
		ImageURL:           b.ImageURL,
		MaxGuests:          b.MaxGuests,
		Amenities:          b.Amenities,
		TotalUnits:         b.TotalUnits,
		Status:             b.Status.String(),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.CreatedAt,
	}
}
