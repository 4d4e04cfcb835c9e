package queries

import (
	"context"

	"github.com/google/uuid"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/infra"
	"luxora-booking/internal/pkg/errs"
)

type BookingQueries interface {
	// List returns every booking, newest first.
	List(ctx context.Context) ([]*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	GetByCode(ctx context.Context, code string) (*BookingView, error)
}

type BookingReadStore interface {
	FindByCode(ctx context.Context, code string) (*BookingView, error)
	List(ctx context.Context) ([]*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]*BookingView, error) {
	return q.readStore.List(ctx)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.readStore.ListByUser(ctx, userID)
}

func (q *bookingQueriesImpl) GetByCode(ctx context.Context, code string) (*BookingView, error) {
	if !booking.IsValidCode(code) {
		return nil, errs.Mark(errs.Newf("malformed booking code %q", code), errs.ErrBookingNotFound)
	}

	view, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return view, nil
}
