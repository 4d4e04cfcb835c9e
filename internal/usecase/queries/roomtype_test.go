//go:build unit

package queries_test

import (
	"context"
	"testing"

	"luxora-booking/internal/infra"
	"luxora-booking/internal/pkg/errs"
	"luxora-booking/internal/usecase/queries"
	"luxora-booking/tests/common/builder"
	queriesmock "luxora-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomTypeQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("List forwards the inactive flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRoomTypeReadStore(ctrl)
		views := []*queries.RoomTypeView{builder.NewRoomBuilder().AsInactive().BuildView()}
		store.EXPECT().List(ctx, true).Return(views, nil)

		got, err := queries.NewRoomTypeQueries(store).List(ctx, true)

		require.NoError(t, err)
		assert.Equal(t, views, got)
		assert.False(t, got[0].IsActive())
	})

	t.Run("GetByID maps not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRoomTypeReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("room type not found", pgx.ErrNoRows))

		_, err := queries.NewRoomTypeQueries(store).GetByID(ctx, id)

		assert.True(t, errs.Is(err, errs.ErrRoomNotFound), "got %v", err)
	})
}

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		view := builder.NewUserBuilder().BuildReadModel()
		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		got, err := queries.NewUserQueries(store).GetCurrentUser(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("deleted account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows))

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, id)

		assert.True(t, errs.Is(err, errs.ErrUserNotFound), "got %v", err)
	})
}
