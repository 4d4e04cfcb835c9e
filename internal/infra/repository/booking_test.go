//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"luxora-booking/internal/infra"
	"luxora-booking/internal/infra/repository"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/tests/common/builder"
	repositorymock "luxora-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: persists the price snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		b := builder.NewBookingBuilder()
		mockQueries.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error) {
				assert.Equal(t, b.Code, arg.Code)
				assert.Equal(t, int64(18000), arg.PricePerNightCents)
				assert.Equal(t, int32(3), arg.TotalNights)
				assert.Equal(t, int64(54000), arg.TotalPriceCents)
				assert.Equal(t, "confirmed", arg.Status)
				assert.False(t, arg.UserID.Valid)
				return arg.ID, nil
			})

		err := repository.NewBookingRepository(mockQueries, nil).Create(ctx, b.BuildDomain())

		require.NoError(t, err)
	})

	t.Run("error: code collision keeps the constraint name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockQueries.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, &pgconn.PgError{Code: "23505", ConstraintName: "bookings_code_key"})

		err := repository.NewBookingRepository(mockQueries, nil).Create(ctx, builder.NewBookingBuilder().BuildDomain())

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "bookings_code_key", infra.ConstraintName(err))
	})
}

func TestBookingRepository_LockByCode(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()

	testCases := []struct {
		name         string
		setupMock    func(*repositorymock.MockBookingWriteQueries)
		expectedKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			setupMock: func(m *repositorymock.MockBookingWriteQueries) {
				m.EXPECT().LockBookingByCode(ctx, gomock.Any(), b.Code).Return(b.BuildInfra(), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(m *repositorymock.MockBookingWriteQueries) {
				m.EXPECT().LockBookingByCode(ctx, gomock.Any(), b.Code).Return(sqlc.Bookings{}, pgx.ErrNoRows)
			},
			expectedKind: infra.KindNotFound,
		},
		{
			name: "error: stored status is unknown",
			setupMock: func(m *repositorymock.MockBookingWriteQueries) {
				row := b.BuildInfra()
				row.Status = "archived"
				m.EXPECT().LockBookingByCode(ctx, gomock.Any(), b.Code).Return(row, nil)
			},
			expectedKind: infra.KindDBFailure,
		},
		{
			name: "error: database error",
			setupMock: func(m *repositorymock.MockBookingWriteQueries) {
				m.EXPECT().LockBookingByCode(ctx, gomock.Any(), b.Code).Return(sqlc.Bookings{}, errDBConnectionLost)
			},
			expectedKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			tc.setupMock(mockQueries)

			got, err := repository.NewBookingRepository(mockQueries, nil).LockByCode(ctx, b.Code)

			if tc.expectedKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectedKind), "expected kind [%v] but got (%v)", tc.expectedKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.Code, got.Code())
			assert.Equal(t, 3, got.Quote().Nights)
			assert.Equal(t, b.CheckIn, got.Stay().CheckIn())
		})
	}
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: writes the cancelled status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		b := builder.NewBookingBuilder().AsCancelled()
		mockQueries.EXPECT().UpdateBookingStatus(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
				assert.Equal(t, b.ID, arg.ID)
				assert.Equal(t, "cancelled", arg.Status)
				return 1, nil
			})

		require.NoError(t, repository.NewBookingRepository(mockQueries, nil).UpdateStatus(ctx, b.BuildDomain()))
	})

	t.Run("error: no row affected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockQueries.EXPECT().UpdateBookingStatus(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := repository.NewBookingRepository(mockQueries, nil).UpdateStatus(ctx, builder.NewBookingBuilder().BuildDomain())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockQueries.EXPECT().UpdateBookingStatus(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errDBConnectionLost)

		err := repository.NewBookingRepository(mockQueries, nil).UpdateStatus(ctx, builder.NewBookingBuilder().BuildDomain())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
