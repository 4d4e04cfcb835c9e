//go:build unit

package repository_test

import (
	"context"
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

func TestRoomTypeRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: nil amenities become an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
		room := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Amenities = nil })
		mockQueries.EXPECT().CreateRoomType(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateRoomTypeParams) (uuid.UUID, error) {
				assert.Equal(t, "Double", arg.RoomType)
				assert.Equal(t, int64(18000), arg.PriceCents)
				assert.Equal(t, "active", arg.Status)
				assert.NotNil(t, arg.Amenities)
				return arg.ID, nil
			})

		require.NoError(t, repository.NewRoomTypeRepository(mockQueries, nil).Create(ctx, room.BuildDomain()))
	})

	t.Run("error: check constraint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
		mockQueries.EXPECT().CreateRoomType(ctx, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, &pgconn.PgError{Code: "23514"})

		err := repository.NewRoomTypeRepository(mockQueries, nil).Create(ctx, builder.NewRoomBuilder().BuildDomain())

		assert.True(t, infra.IsKind(err, infra.KindConstraintViolated))
	})
}

func TestRoomTypeRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		affected     int64
		queryErr     error
		expectedKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "error: room type vanished", affected: 0, expectedKind: infra.KindNotFound},
		{name: "error: database error", queryErr: errDBConnectionLost, expectedKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
			room := builder.NewRoomBuilder().AsInactive()
			mockQueries.EXPECT().UpdateRoomType(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateRoomTypeParams) (int64, error) {
					assert.Equal(t, room.ID, arg.ID)
					assert.Equal(t, "inactive", arg.Status)
					return tc.affected, tc.queryErr
				})

			err := repository.NewRoomTypeRepository(mockQueries, nil).Update(ctx, room.BuildDomain())

			if tc.expectedKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectedKind), "expected kind [%v] but got (%v)", tc.expectedKind, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRoomTypeRepository_LockActiveByLabel(t *testing.T) {
	ctx := context.Background()

	t.Run("success: locks the active row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
		room := builder.NewRoomBuilder().WithTotalUnits(3)
		mockQueries.EXPECT().LockRoomTypeByLabel(ctx, gomock.Any(), sqlc.LockRoomTypeByLabelParams{
			RoomType: "Double",
			Status:   "active",
		}).Return(room.BuildInfra(), nil)

		got, err := repository.NewRoomTypeRepository(mockQueries, nil).LockActiveByLabel(ctx, "Double")

		require.NoError(t, err)
		assert.Equal(t, room.ID, got.ID())
		assert.Equal(t, 3, got.TotalUnits())
	})

	t.Run("error: no active room type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
		mockQueries.EXPECT().LockRoomTypeByLabel(ctx, gomock.Any(), gomock.Any()).Return(sqlc.RoomTypes{}, pgx.ErrNoRows)

		_, err := repository.NewRoomTypeRepository(mockQueries, nil).LockActiveByLabel(ctx, "Penthouse")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: stored status is unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
		row := builder.NewRoomBuilder().BuildInfra()
		row.Status = "archived"
		mockQueries.EXPECT().LockRoomTypeByLabel(ctx, gomock.Any(), gomock.Any()).Return(row, nil)

		_, err := repository.NewRoomTypeRepository(mockQueries, nil).LockActiveByLabel(ctx, "Double")

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRoomTypeRepository_Count(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
	mockQueries.EXPECT().CountRoomTypes(ctx, gomock.Any()).Return(int64(3), nil)

	n, err := repository.NewRoomTypeRepository(mockQueries, nil).Count(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
