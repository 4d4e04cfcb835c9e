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

func TestBookingQueries_GetByCode(t *testing.T) {
	ctx := context.Background()
	view := builder.NewBookingBuilder().BuildView()

	testCases := []struct {
		name      string
		code      string
		setupMock func(*queriesmock.MockBookingReadStore)
		errIs     error
		errKind   infra.RepositoryErrorKind
	}{
		{
			name: "success",
			code: view.Code,
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByCode(ctx, view.Code).Return(view, nil)
			},
		},
		{
			name: "error: not found",
			code: "LUX000000",
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByCode(ctx, "LUX000000").Return(nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows))
			},
			errIs: errs.ErrBookingNotFound,
		},
		{
			name:      "error: malformed code skips the store",
			code:      "LUX12",
			setupMock: func(*queriesmock.MockBookingReadStore) {},
			errIs:     errs.ErrBookingNotFound,
		},
		{
			name: "error: database failure",
			code: view.Code,
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByCode(ctx, view.Code).Return(nil, infra.WrapRepoErr("failed to get booking", errDBConnectionLost))
			},
			errKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			tc.setupMock(store)

			got, err := queries.NewBookingQueries(store).GetByCode(ctx, tc.code)

			switch {
			case tc.errIs != nil:
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.Nil(t, got)
			case tc.errKind != "":
				assert.True(t, infra.IsKind(err, tc.errKind), "got %v", err)
				assert.False(t, errs.Is(err, errs.ErrBookingNotFound))
			default:
				require.NoError(t, err)
				assert.Equal(t, view, got)
			}
		})
	}
}

func TestBookingQueries_Lists(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	q := queries.NewBookingQueries(store)

	userID := uuid.New()
	all := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}
	mine := []*queries.BookingView{builder.NewBookingBuilder().WithUser(userID).BuildView()}
	store.EXPECT().List(ctx).Return(all, nil)
	store.EXPECT().ListByUser(ctx, userID).Return(mine, nil)

	gotAll, err := q.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, gotAll)

	gotMine, err := q.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, mine, gotMine)
}
