package readstore

import (
	"context"

	"luxora-booking/internal/domain/roomtype"
	"luxora-booking/internal/infra"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/internal/pkg/pgconv"
	"luxora-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomTypeViewQueries interface {
	GetRoomTypeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RoomTypes, error)
	FindRoomTypeByLabel(ctx context.Context, db sqlc.DBTX, arg sqlc.FindRoomTypeByLabelParams) (sqlc.RoomTypes, error)
	ListRoomTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.RoomTypes, error)
	ListRoomTypesByStatus(ctx context.Context, db sqlc.DBTX, status string) ([]sqlc.RoomTypes, error)
}

type RoomTypeReadStore struct {
	queries RoomTypeViewQueries
	db      sqlc.DBTX
}

func NewRoomTypeReadStore(queries RoomTypeViewQueries, db sqlc.DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	row, err := r.queries.GetRoomTypeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by ID", err)
	}
	return roomTypeView(row), nil
}

// FindActiveByLabel returns the earliest created active room type with the label.
func (r *RoomTypeReadStore) FindActiveByLabel(ctx context.Context, label string) (*queries.RoomTypeView, error) {
	row, err := r.queries.FindRoomTypeByLabel(ctx, r.db, sqlc.FindRoomTypeByLabelParams{
		RoomType: label,
		Status:   roomtype.StatusActive.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by label", err)
	}
	return roomTypeView(row), nil
}

func (r *RoomTypeReadStore) List(ctx context.Context, includeInactive bool) ([]*queries.RoomTypeView, error) {
	var (
		rows []sqlc.RoomTypes
		err  error
	)
	if includeInactive {
		rows, err = r.queries.ListRoomTypes(ctx, r.db)
	} else {
		rows, err = r.queries.ListRoomTypesByStatus(ctx, r.db, roomtype.StatusActive.String())
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}

	result := make([]*queries.RoomTypeView, len(rows))
	for i, row := range rows {
		result[i] = roomTypeView(row)
	}
	return result, nil
}

func roomTypeView(row sqlc.RoomTypes) *queries.RoomTypeView {
	amenities := row.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &queries.RoomTypeView{
		ID:                 row.ID,
		Name:               row.Name,
		Description:        row.Description,
		PricePerNightCents: row.PriceCents,
		RoomType:           row.RoomType,
		ImageURL:           row.ImageUrl,
		MaxGuests:          int(row.MaxGuests),
		Amenities:          amenities,
		TotalUnits:         int(row.TotalUnits),
		Status:             row.Status,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
