package readstore

import (
	"context"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/domain/roomtype"
	"luxora-booking/internal/infra"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/internal/pkg/pgconv"
	"luxora-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingViewByCode(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingViewByCodeParams) (sqlc.GetBookingViewByCodeRow, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX, roomStatus string) ([]sqlc.ListBookingViewsRow, error)
	ListBookingViewsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByUserParams) ([]sqlc.ListBookingViewsByUserRow, error)
	CountOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error)
	BookingCodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// Room types join only while active; inactive ones degrade to the unknown label.
var enrichStatus = roomtype.StatusActive.String()

func (r *BookingReadStore) FindByCode(ctx context.Context, code string) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByCode(ctx, r.db, sqlc.GetBookingViewByCodeParams{
		RoomStatus: enrichStatus,
		Code:       code,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by code", err)
	}
	return bookingView(sqlc.ListBookingViewsRow(row)), nil
}

func (r *BookingReadStore) List(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViews(ctx, r.db, enrichStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = bookingView(row)
	}
	return result, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByUser(ctx, r.db, sqlc.ListBookingViewsByUserParams{
		RoomStatus: enrichStatus,
		UserID:     pgconv.UUIDToPgtype(userID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = bookingView(sqlc.ListBookingViewsRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) CountOverlappingConfirmed(ctx context.Context, roomTypeID uuid.UUID, stay booking.Stay) (int, error) {
	n, err := r.queries.CountOverlappingBookings(ctx, r.db, sqlc.CountOverlappingBookingsParams{
		RoomTypeID:  roomTypeID,
		Status:      booking.StatusConfirmed.String(),
		WindowEnd:   pgconv.DateTimeToPgtype(stay.CheckOut()),
		WindowStart: pgconv.DateTimeToPgtype(stay.CheckIn()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return int(n), nil
}

func (r *BookingReadStore) CodeExists(ctx context.Context, code string) (bool, error) {
	exists, err := r.queries.BookingCodeExists(ctx, r.db, code)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking code", err)
	}
	return exists, nil
}

func bookingView(row sqlc.ListBookingViewsRow) *queries.BookingView {
	return &queries.BookingView{
		ID:                 row.ID,
		Code:               row.Code,
		GuestName:          row.GuestName,
		GuestEmail:         row.GuestEmail,
		GuestPhone:         row.GuestPhone,
		RoomTypeID:         row.RoomTypeID,
		RoomType:           pgconv.StringOrDefault(row.RoomTypeLabel, queries.UnknownRoomTypeLabel),
		RoomName:           pgconv.StringPtrFromPgtype(row.RoomName),
		UserID:             pgconv.UUIDPtrFromPgtype(row.UserID),
		CheckIn:            pgconv.DateTimeFromPgtype(row.CheckIn),
		CheckOut:           pgconv.DateTimeFromPgtype(row.CheckOut),
		Guests:             int(row.Guests),
		PricePerNightCents: row.PricePerNightCents,
		TotalNights:        int(row.TotalNights),
		TotalPriceCents:    row.TotalPriceCents,
		Status:             row.Status,
		SpecialRequests:    row.SpecialRequests,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
