//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/domain/pricing"
	"luxora-booking/internal/infra"
	"luxora-booking/internal/pkg/clock"
	"luxora-booking/internal/pkg/config"
	"luxora-booking/internal/pkg/errs"
	"luxora-booking/internal/usecase/commands"
	"luxora-booking/internal/usecase/shared"
	"luxora-booking/tests/common/builder"
	sharedmock "luxora-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	rooms    *sharedmock.MockRoomTypeRepository
	bookings *sharedmock.MockBookingRepository
	clock    *clock.MockClock
	codes    []string
	drawn    int
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupSubTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.rooms = sharedmock.NewMockRoomTypeRepository(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2099, 1, 15, 10, 0, 0, 0, time.UTC))
	s.codes = []string{"LUX000001"}
	s.drawn = 0

	s.tx.EXPECT().RoomTypes().Return(s.rooms).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
}

func (s *BookingCommandsTestSuite) commands(maxAttempts int) commands.BookingCommands {
	gen := booking.CodeGeneratorFunc(func() (string, error) {
		code := s.codes[s.drawn%len(s.codes)]
		s.drawn++
		return code, nil
	})
	return commands.NewBookingCommands(s.uow, gen, pricing.NewNightlyPriceCalculator(), s.clock,
		config.BookingConfig{MaxCodeAttempts: maxAttempts, TimeZone: "UTC"})
}

// expectTx runs the callback against the mocked transaction n times.
func (s *BookingCommandsTestSuite) expectTx(n int) {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).Times(n)
}

func codeCollision() error {
	return infra.WrapRepoErr("failed to create booking",
		&pgconn.PgError{Code: "23505", ConstraintName: "bookings_code_key"})
}

func (s *BookingCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("success: confirmed booking with price snapshot", func() {
		room := builder.NewRoomBuilder().WithTotalUnits(2).BuildDomain()
		userID := uuid.New()
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SpecialRequests = "  Late arrival "
		}).BuildDTO()
		s.codes = []string{"LUX000001", "LUX000002"}

		s.expectTx(1)
		s.rooms.EXPECT().LockActiveByLabel(gomock.Any(), "Double").Return(room, nil)
		s.reads.EXPECT().CountOverlappingConfirmed(gomock.Any(), room.ID(), gomock.Any()).Return(1, nil)
		s.reads.EXPECT().BookingCodeExists(gomock.Any(), "LUX000001").Return(true, nil)
		s.reads.EXPECT().BookingCodeExists(gomock.Any(), "LUX000002").Return(false, nil)

		var saved *booking.Booking
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				saved = b
				return nil
			})

		result, err := s.commands(20).Create(ctx, req, &userID)

		s.Require().NoError(err)
		s.Equal("LUX000002", result.Code)
		s.Require().NotNil(saved)
		s.Equal(booking.StatusConfirmed, saved.Status())
		s.Equal(room.ID(), saved.RoomTypeID())
		s.Equal(&userID, saved.UserID())
		s.Equal(3, saved.Stay().Nights())
		s.Equal(int64(18000), saved.Quote().PricePerNight.Cents())
		s.Equal(int64(54000), saved.Quote().Total.Cents())
		s.Equal("Late arrival", saved.SpecialRequests())
		s.Equal(s.clock.Now(), saved.CreatedAt())
	})

	s.Run("error: malformed date never opens a transaction", func() {
		req := builder.NewBookingBuilder().BuildDTO()
		req.CheckIn = "10/02/2099"

		_, err := s.commands(20).Create(ctx, req, nil)

		s.True(errs.Is(err, errs.ErrInvalidDateFormat), "got %v", err)
	})

	s.Run("error: check-in today is rejected", func() {
		req := builder.NewBookingBuilder().WithStay(
			time.Date(2099, 1, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2099, 1, 16, 0, 0, 0, 0, time.UTC),
		).BuildDTO()

		_, err := s.commands(20).Create(ctx, req, nil)

		s.True(errs.Is(err, errs.ErrInvalidDateRange), "got %v", err)
	})

	s.Run("error: unknown room type", func() {
		s.expectTx(1)
		s.rooms.EXPECT().LockActiveByLabel(gomock.Any(), "Penthouse").
			Return(nil, infra.WrapRepoErr("room type not found", pgx.ErrNoRows))

		_, err := s.commands(20).Create(ctx, builder.NewBookingBuilder().WithRoomType("Penthouse").BuildDTO(), nil)

		s.True(errs.Is(err, errs.ErrRoomTypeNotFound), "got %v", err)
	})

	s.Run("error: capacity exceeded inserts nothing", func() {
		room := builder.NewRoomBuilder().WithTotalUnits(2).BuildDomain()
		s.expectTx(1)
		s.rooms.EXPECT().LockActiveByLabel(gomock.Any(), "Double").Return(room, nil)
		s.reads.EXPECT().CountOverlappingConfirmed(gomock.Any(), room.ID(), gomock.Any()).Return(2, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands(20).Create(ctx, builder.NewBookingBuilder().BuildDTO(), nil)

		s.True(errs.Is(err, errs.ErrCapacityExceeded), "got %v", err)
	})

	s.Run("error: code space exhausted after the attempt budget", func() {
		room := builder.NewRoomBuilder().BuildDomain()
		s.expectTx(1)
		s.rooms.EXPECT().LockActiveByLabel(gomock.Any(), "Double").Return(room, nil)
		s.reads.EXPECT().CountOverlappingConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
		s.reads.EXPECT().BookingCodeExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(5)

		_, err := s.commands(5).Create(ctx, builder.NewBookingBuilder().BuildDTO(), nil)

		s.True(errs.Is(err, errs.ErrCodeSpaceExhausted), "got %v", err)
		s.Equal(5, s.drawn)
	})

	s.Run("success: insert collision on the code restarts the transaction", func() {
		room := builder.NewRoomBuilder().BuildDomain()
		s.codes = []string{"LUX111111", "LUX222222"}

		s.expectTx(2)
		s.rooms.EXPECT().LockActiveByLabel(gomock.Any(), "Double").Return(room, nil).Times(2)
		s.reads.EXPECT().CountOverlappingConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).Times(2)
		s.reads.EXPECT().BookingCodeExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		gomock.InOrder(
			s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(codeCollision()),
			s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		result, err := s.commands(20).Create(ctx, builder.NewBookingBuilder().BuildDTO(), nil)

		s.Require().NoError(err)
		s.Equal("LUX222222", result.Code)
	})

	s.Run("error: repeated code collisions give up", func() {
		room := builder.NewRoomBuilder().BuildDomain()
		s.expectTx(3)
		s.rooms.EXPECT().LockActiveByLabel(gomock.Any(), "Double").Return(room, nil).Times(3)
		s.reads.EXPECT().CountOverlappingConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).Times(3)
		s.reads.EXPECT().BookingCodeExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(codeCollision()).Times(3)

		_, err := s.commands(20).Create(ctx, builder.NewBookingBuilder().BuildDTO(), nil)

		s.True(infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)
	})

	s.Run("error: other insert failures are not retried", func() {
		room := builder.NewRoomBuilder().BuildDomain()
		s.expectTx(1)
		s.rooms.EXPECT().LockActiveByLabel(gomock.Any(), "Double").Return(room, nil)
		s.reads.EXPECT().CountOverlappingConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
		s.reads.EXPECT().BookingCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create booking", errors.New("connection reset")))

		_, err := s.commands(20).Create(ctx, builder.NewBookingBuilder().BuildDTO(), nil)

		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed), "got %v", err)
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	ctx := context.Background()

	s.Run("success: confirmed booking becomes cancelled", func() {
		existing := builder.NewBookingBuilder().BuildDomain()
		s.expectTx(1)
		s.bookings.EXPECT().LockByCode(gomock.Any(), existing.Code()).Return(existing, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), existing).Return(nil)

		result, err := s.commands(20).Cancel(ctx, existing.Code())

		s.Require().NoError(err)
		s.Equal(&commands.CancelBookingResult{Code: existing.Code(), Status: booking.StatusCancelled}, result)
		s.Equal(s.clock.Now(), existing.UpdatedAt())
	})

	s.Run("success: stays that already started can be cancelled", func() {
		existing := builder.NewBookingBuilder().WithStay(
			time.Date(2099, 1, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2099, 1, 20, 0, 0, 0, 0, time.UTC),
		).BuildDomain()
		s.expectTx(1)
		s.bookings.EXPECT().LockByCode(gomock.Any(), existing.Code()).Return(existing, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), existing).Return(nil)

		_, err := s.commands(20).Cancel(ctx, existing.Code())

		s.NoError(err)
	})

	s.Run("error: second cancel is rejected", func() {
		existing := builder.NewBookingBuilder().AsCancelled().BuildDomain()
		s.expectTx(1)
		s.bookings.EXPECT().LockByCode(gomock.Any(), existing.Code()).Return(existing, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands(20).Cancel(ctx, existing.Code())

		s.True(errs.Is(err, errs.ErrBookingAlreadyCancelled), "got %v", err)
		s.Equal(booking.StatusCancelled, existing.Status())
	})

	s.Run("error: unknown code", func() {
		s.expectTx(1)
		s.bookings.EXPECT().LockByCode(gomock.Any(), "LUX000000").
			Return(nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows))

		_, err := s.commands(20).Cancel(ctx, "LUX000000")

		s.True(errs.Is(err, errs.ErrBookingNotFound), "got %v", err)
	})

	s.Run("error: malformed code skips the database", func() {
		_, err := s.commands(20).Cancel(ctx, "lux123")

		s.True(errs.Is(err, errs.ErrBookingNotFound), "got %v", err)
	})
}
