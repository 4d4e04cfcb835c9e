package repository

import (
	"context"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/infra"
	"luxora-booking/internal/infra/repository/converter"
	sqlc "luxora-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	LockBookingByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	params := converter.BookingToInfra(b)

	if _, err := r.queries.CreateBooking(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) LockByCode(ctx context.Context, code string) (*booking.Booking, error) {
	row, err := r.queries.LockBookingByCode(ctx, r.db, code)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking by code", err)
	}

	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, r.db, converter.BookingStatusToInfra(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
