//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/infra"
	"luxora-booking/internal/infra/readstore"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/internal/usecase/queries"
	"luxora-booking/tests/common/builder"
	readstoremock "luxora-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func bookingRow(b *builder.BookingBuilder, label, name *string) sqlc.GetBookingViewByCodeRow {
	base := b.BuildInfra()
	row := sqlc.GetBookingViewByCodeRow{
		ID:                 base.ID,
		Code:               base.Code,
		GuestName:          base.GuestName,
		GuestEmail:         base.GuestEmail,
		GuestPhone:         base.GuestPhone,
		RoomTypeID:         base.RoomTypeID,
		UserID:             base.UserID,
		CheckIn:            base.CheckIn,
		CheckOut:           base.CheckOut,
		Guests:             base.Guests,
		PricePerNightCents: base.PricePerNightCents,
		TotalNights:        base.TotalNights,
		TotalPriceCents:    base.TotalPriceCents,
		Status:             base.Status,
		SpecialRequests:    base.SpecialRequests,
		CreatedAt:          base.CreatedAt,
	}
	if label != nil {
		row.RoomTypeLabel = pgtype.Text{String: *label, Valid: true}
	}
	if name != nil {
		row.RoomName = pgtype.Text{String: *name, Valid: true}
	}
	return row
}

// =============================================================================
// FindByCode Tests
// =============================================================================

func TestBookingReadStore_FindByCode(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	label, name := "Double", "Deluxe Double Room"

	testCases := []struct {
		name         string
		setupMock    func(*readstoremock.MockBookingViewQueries)
		expectedKind infra.RepositoryErrorKind
		assertView   func(*testing.T, *queries.BookingView)
	}{
		{
			name: "success: active room type enriches the view",
			setupMock: func(m *readstoremock.MockBookingViewQueries) {
				m.EXPECT().GetBookingViewByCode(ctx, gomock.Any(), sqlc.GetBookingViewByCodeParams{RoomStatus: "active", Code: b.Code}).
					Return(bookingRow(b, &label, &name), nil)
			},
			assertView: func(t *testing.T, v *queries.BookingView) {
				assert.Equal(t, b.BuildView(), v)
			},
		},
		{
			name: "success: missing room type degrades to Unknown",
			setupMock: func(m *readstoremock.MockBookingViewQueries) {
				m.EXPECT().GetBookingViewByCode(ctx, gomock.Any(), gomock.Any()).Return(bookingRow(b, nil, nil), nil)
			},
			assertView: func(t *testing.T, v *queries.BookingView) {
				assert.Equal(t, queries.UnknownRoomTypeLabel, v.RoomType)
				assert.Nil(t, v.RoomName)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(m *readstoremock.MockBookingViewQueries) {
				m.EXPECT().GetBookingViewByCode(ctx, gomock.Any(), gomock.Any()).Return(sqlc.GetBookingViewByCodeRow{}, pgx.ErrNoRows)
			},
			expectedKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(m *readstoremock.MockBookingViewQueries) {
				m.EXPECT().GetBookingViewByCode(ctx, gomock.Any(), gomock.Any()).Return(sqlc.GetBookingViewByCodeRow{}, errDBConnectionLost)
			},
			expectedKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, nil)
			tc.setupMock(mockQueries)

			view, err := store.FindByCode(ctx, b.Code)

			if tc.expectedKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectedKind), "expected kind [%v] but got [%T] (%v)", tc.expectedKind, err, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			tc.assertView(t, view)
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestBookingReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: keeps query order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		label := "Double"
		newer := sqlc.ListBookingViewsRow(bookingRow(builder.NewBookingBuilder().WithCode("LUX000002"), &label, nil))
		older := sqlc.ListBookingViewsRow(bookingRow(builder.NewBookingBuilder().WithCode("LUX000001"), nil, nil))
		mockQueries.EXPECT().ListBookingViews(ctx, gomock.Any(), "active").Return([]sqlc.ListBookingViewsRow{newer, older}, nil)

		views, err := readstore.NewBookingReadStore(mockQueries, nil).List(ctx)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "LUX000002", views[0].Code)
		assert.Equal(t, "Double", views[0].RoomType)
		assert.Equal(t, "Unknown", views[1].RoomType)
	})

	t.Run("success: empty result is an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().ListBookingViews(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		views, err := readstore.NewBookingReadStore(mockQueries, nil).List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("success: by user filters on the account id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		userID := uuid.New()
		row := sqlc.ListBookingViewsByUserRow(bookingRow(builder.NewBookingBuilder().WithUser(userID), nil, nil))
		mockQueries.EXPECT().ListBookingViewsByUser(ctx, gomock.Any(), sqlc.ListBookingViewsByUserParams{
			RoomStatus: "active",
			UserID:     pgtype.UUID{Bytes: userID, Valid: true},
		}).Return([]sqlc.ListBookingViewsByUserRow{row}, nil)

		views, err := readstore.NewBookingReadStore(mockQueries, nil).ListByUser(ctx, userID)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, &userID, views[0].UserID)
	})
}

// =============================================================================
// Occupancy Tests
// =============================================================================

func TestBookingReadStore_CountOverlappingConfirmed(t *testing.T) {
	ctx := context.Background()
	roomTypeID := uuid.New()
	checkIn := time.Date(2099, 2, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2099, 2, 13, 0, 0, 0, 0, time.UTC)

	t.Run("success: half-open window on confirmed bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().CountOverlappingBookings(ctx, gomock.Any(), sqlc.CountOverlappingBookingsParams{
			RoomTypeID:  roomTypeID,
			Status:      "confirmed",
			WindowEnd:   pgtype.Timestamp{Time: checkOut, Valid: true},
			WindowStart: pgtype.Timestamp{Time: checkIn, Valid: true},
		}).Return(int64(2), nil)

		n, err := readstore.NewBookingReadStore(mockQueries, nil).
			CountOverlappingConfirmed(ctx, roomTypeID, booking.ReconstructStay(checkIn, checkOut))

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().CountOverlappingBookings(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errDBConnectionLost)

		_, err := readstore.NewBookingReadStore(mockQueries, nil).
			CountOverlappingConfirmed(ctx, roomTypeID, booking.ReconstructStay(checkIn, checkOut))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_CodeExists(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	mockQueries.EXPECT().BookingCodeExists(ctx, gomock.Any(), "LUX123456").Return(true, nil)

	exists, err := readstore.NewBookingReadStore(mockQueries, nil).CodeExists(ctx, "LUX123456")

	require.NoError(t, err)
	assert.True(t, exists)
}
