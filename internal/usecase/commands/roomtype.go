package commands

import (
	"context"
	"log/slog"

	"luxora-booking/internal/domain/roomtype"
	reqdto "luxora-booking/internal/handler/dto/request"
	"luxora-booking/internal/infra"
	"luxora-booking/internal/pkg/clock"
	"luxora-booking/internal/pkg/errs"
	"luxora-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	MessageSamplesCreated = "Sample rooms created successfully"
	MessageSamplesExist   = "Rooms already exist"
)

type SeedResult struct {
	Message string
	Created int
}

type RoomTypeCommands interface {
	Create(ctx context.Context, req reqdto.CreateRoomRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) error
	// Deactivate is a soft delete; bookings keep pointing at the row.
	Deactivate(ctx context.Context, id uuid.UUID) error
	SeedSamples(ctx context.Context) (*SeedResult, error)
}

type roomTypeCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomTypeCommands(uow shared.UnitOfWork, clk clock.Clock) RoomTypeCommands {
	return &roomTypeCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (r *roomTypeCommandsImpl) Create(ctx context.Context, req reqdto.CreateRoomRequest) (uuid.UUID, error) {
	attrs, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	entity, err := roomtype.NewRoomType(attrs, r.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.RoomTypes().Create(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entity.ID(), nil
}

func (r *roomTypeCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) error {
	p, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := lockRoomType(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := entity.Apply(p, r.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.RoomTypes().Update(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (r *roomTypeCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := lockRoomType(ctx, tx, id)
		if err != nil {
			return err
		}
		if !entity.IsActive() {
			return nil
		}
		entity.Deactivate(r.clock.Now())
		if err := tx.RoomTypes().Update(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		slog.Info("room type deactivated", "id", id, "room_type", entity.Label())
		return nil
	})
}

func (r *roomTypeCommandsImpl) SeedSamples(ctx context.Context) (*SeedResult, error) {
	var result *SeedResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.RoomTypes().Count(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if count > 0 {
			result = &SeedResult{Message: MessageSamplesExist}
			return nil
		}

		now := r.clock.Now()
		samples := roomtype.SampleRooms()
		for _, attrs := range samples {
			entity, err := roomtype.NewRoomType(attrs, now)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tx.RoomTypes().Create(ctx, entity); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		result = &SeedResult{Message: MessageSamplesCreated, Created: len(samples)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func lockRoomType(ctx context.Context, tx shared.Tx, id uuid.UUID) (*roomtype.RoomType, error) {
	entity, err := tx.RoomTypes().LockByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity, nil
}
