package repository

import (
	"context"

	"luxora-booking/internal/domain/roomtype"
	"luxora-booking/internal/infra"
	"luxora-booking/internal/infra/repository/converter"
	sqlc "luxora-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomTypeWriteQueries interface {
	CreateRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomTypeParams) (uuid.UUID, error)
	UpdateRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomTypeParams) (int64, error)
	LockRoomTypeByLabel(ctx context.Context, db sqlc.DBTX, arg sqlc.LockRoomTypeByLabelParams) (sqlc.RoomTypes, error)
	LockRoomTypeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RoomTypes, error)
	CountRoomTypes(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type RoomTypeRepository struct {
	queries RoomTypeWriteQueries
	db      sqlc.DBTX
}

func NewRoomTypeRepository(queries RoomTypeWriteQueries, db sqlc.DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *roomtype.RoomType) error {
	if _, err := r.queries.CreateRoomType(ctx, r.db, converter.RoomTypeToInfra(rt)); err != nil {
		return infra.WrapRepoErr("failed to create room type", err)
	}
	return nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *roomtype.RoomType) error {
	affected, err := r.queries.UpdateRoomType(ctx, r.db, converter.RoomTypeUpdateToInfra(rt))
	if err != nil {
		return infra.WrapRepoErr("failed to update room type", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomTypeRepository) LockActiveByLabel(ctx context.Context, label string) (*roomtype.RoomType, error) {
	row, err := r.queries.LockRoomTypeByLabel(ctx, r.db, sqlc.LockRoomTypeByLabelParams{
		RoomType: label,
		Status:   roomtype.StatusActive.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock active room type by label", err)
	}
	return toRoomType(row)
}

func (r *RoomTypeRepository) LockByID(ctx context.Context, id uuid.UUID) (*roomtype.RoomType, error) {
	row, err := r.queries.LockRoomTypeByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock room type by ID", err)
	}
	return toRoomType(row)
}

func (r *RoomTypeRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountRoomTypes(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count room types", err)
	}
	return n, nil
}

func toRoomType(row sqlc.RoomTypes) (*roomtype.RoomType, error) {
	rt, err := converter.RoomTypeFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room type", err, infra.KindDBFailure)
	}
	return rt, nil
}
