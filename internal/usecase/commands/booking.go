package commands

import (
	"context"
	"log/slog"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/domain/pricing"
	reqdto "luxora-booking/internal/handler/dto/request"
	"luxora-booking/internal/infra"
	"luxora-booking/internal/pkg/clock"
	"luxora-booking/internal/pkg/config"
	"luxora-booking/internal/pkg/errs"
	"luxora-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	bookingCodeConstraint = "bookings_code_key"
	maxInsertAttempts     = 3
)

type CreateBookingResult struct {
	Code string
}

type CancelBookingResult struct {
	Code   string
	Status booking.Status
}

type BookingCommands interface {
	// Create books one unit of the requested room type. userID is nil for
	// anonymous bookings.
	Create(ctx context.Context, req reqdto.CreateBookingRequest, userID *uuid.UUID) (*CreateBookingResult, error)
	Cancel(ctx context.Context, code string) (*CancelBookingResult, error)
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	codes      booking.CodeGenerator
	prices     pricing.PriceCalculator
	clock      clock.Clock
	maxAttempt int
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	codes booking.CodeGenerator,
	prices pricing.PriceCalculator,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:        uow,
		codes:      codes,
		prices:     prices,
		clock:      clk,
		maxAttempt: cfg.MaxCodeAttempts,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, userID *uuid.UUID) (*CreateBookingResult, error) {
	stay, err := booking.ParseStay(req.CheckIn, req.CheckOut, clock.Today(b.clock))
	if err != nil {
		return nil, err
	}

	draft := booking.Draft{
		Guest:           req.Guest(),
		UserID:          userID,
		Stay:            stay,
		Guests:          req.Guests,
		SpecialRequests: req.GetSpecialRequests(),
	}

	// A code checked free can still be taken by a concurrent booking on
	// another room type; the unique index catches that and we start over.
	for attempt := 1; ; attempt++ {
		code, err := b.createOnce(ctx, req.Label(), draft)
		if err == nil {
			slog.Info("booking created", "code", code, "room_type", req.Label(), "nights", stay.Nights())
			return &CreateBookingResult{Code: code}, nil
		}
		if !isCodeCollision(err) || attempt >= maxInsertAttempts {
			return nil, err
		}
		slog.Warn("booking code collided on insert, retrying", "attempt", attempt)
	}
}

func (b *bookingCommandsImpl) createOnce(ctx context.Context, label string, draft booking.Draft) (string, error) {
	var code string
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.RoomTypes().LockActiveByLabel(ctx, label)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrRoomTypeNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		occupied, err := tx.Reads().CountOverlappingConfirmed(ctx, room.ID(), draft.Stay)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		assessment := booking.Assess(booking.Inventory{
			RoomTypeID:    room.ID(),
			TotalUnits:    room.TotalUnits(),
			PricePerNight: room.PricePerNight(),
		}, draft.Stay, occupied, b.prices)
		if !assessment.Available() {
			return errs.ErrCapacityExceeded
		}

		code, err = booking.AllocateCode(b.codes, b.maxAttempt, func(candidate string) (bool, error) {
			return tx.Reads().BookingCodeExists(ctx, candidate)
		})
		if err != nil {
			return err
		}

		draft.RoomTypeID = room.ID()
		entity, err := booking.NewBooking(code, draft, assessment.Quote, b.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Bookings().Create(ctx, entity); err != nil {
			if isCodeCollision(err) {
				return err
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, code string) (*CancelBookingResult, error) {
	if !booking.IsValidCode(code) {
		return nil, errs.ErrBookingNotFound
	}

	var result *CancelBookingResult
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().LockByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := entity.Cancel(b.clock.Now()); err != nil {
			return err
		}

		if err := tx.Bookings().UpdateStatus(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &CancelBookingResult{Code: entity.Code(), Status: entity.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking cancelled", "code", code)
	return result, nil
}

func isCodeCollision(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintName(err) == bookingCodeConstraint
}
