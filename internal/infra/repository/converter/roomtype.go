package converter

import (
	"fmt"

	"luxora-booking/internal/domain/pricing"
	"luxora-booking/internal/domain/roomtype"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/internal/pkg/pgconv"
)

func RoomTypeToInfra(r *roomtype.RoomType) sqlc.CreateRoomTypeParams {
	return sqlc.CreateRoomTypeParams{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
		PriceCents:  r.PricePerNight().Cents(),
		RoomType:    r.Label(),
		ImageUrl:    r.ImageURL(),
		MaxGuests:   toInt32(r.MaxGuests()),
		Amenities:   nonNil(r.Amenities()),
		TotalUnits:  toInt32(r.TotalUnits()),
		Status:      r.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RoomTypeUpdateToInfra(r *roomtype.RoomType) sqlc.UpdateRoomTypeParams {
	return sqlc.UpdateRoomTypeParams{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
		PriceCents:  r.PricePerNight().Cents(),
		RoomType:    r.Label(),
		ImageUrl:    r.ImageURL(),
		MaxGuests:   toInt32(r.MaxGuests()),
		Amenities:   nonNil(r.Amenities()),
		TotalUnits:  toInt32(r.TotalUnits()),
		Status:      r.Status().String(),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RoomTypeFromInfra(row sqlc.RoomTypes) (*roomtype.RoomType, error) {
	status := roomtype.Status(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown room type status %q", row.Status)
	}
	price, err := pricing.NewMoney(row.PriceCents)
	if err != nil {
		return nil, err
	}
	return roomtype.ReconstructRoomType(
		row.ID,
		row.Name,
		row.Description,
		price,
		row.RoomType,
		row.ImageUrl,
		int(row.MaxGuests),
		nonNil(row.Amenities),
		int(row.TotalUnits),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// amenities is NOT NULL; a nil slice would be sent as NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
