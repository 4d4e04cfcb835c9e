package queries

import (
	"context"

	"github.com/google/uuid"

	"luxora-booking/internal/infra"
	"luxora-booking/internal/pkg/errs"
)

type RoomTypeQueries interface {
	List(ctx context.Context, includeInactive bool) ([]*RoomTypeView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
}

type RoomTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	FindActiveByLabel(ctx context.Context, label string) (*RoomTypeView, error)
	List(ctx context.Context, includeInactive bool) ([]*RoomTypeView, error)
}

type roomTypeQueriesImpl struct {
	readStore RoomTypeReadStore
}

func NewRoomTypeQueries(readStore RoomTypeReadStore) RoomTypeQueries {
	return &roomTypeQueriesImpl{readStore: readStore}
}

// List returns room types by ascending nightly price. Inactive ones are
// left out unless includeInactive is set.
func (q *roomTypeQueriesImpl) List(ctx context.Context, includeInactive bool) ([]*RoomTypeView, error) {
	return q.readStore.List(ctx, includeInactive)
}

func (q *roomTypeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, err
	}
	return view, nil
}
