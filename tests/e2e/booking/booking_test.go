//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	resdto "luxora-booking/internal/handler/dto/response"
	"luxora-booking/internal/handler/httperr"
	"luxora-booking/tests/common/builder"
	"luxora-booking/tests/common/dbtest"
	"luxora-booking/tests/common/httptest"
	"luxora-booking/tests/common/testutil"
	"luxora-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/bookings/check-availability"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) seedRoom(units int) *builder.RoomBuilder {
	room := builder.NewRoomBuilder().WithTotalUnits(units)
	dbtest.CreateRoomType(s.T(), s.DB, room)
	return room
}

func (s *bookingSuite) book(req any) (int, *resdto.CreateBookingResponse) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
	if w.Code != http.StatusCreated {
		return w.Code, nil
	}
	var resp resdto.CreateBookingResponse
	httptest.DecodeResponseBody(s.T(), w, &resp)
	return w.Code, &resp
}

func (s *bookingSuite) TestCheckAvailability() {
	s.Run("available room is quoted", func() {
		s.seedRoom(2)
		req := builder.NewBookingBuilder().BuildAvailabilityDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, availabilityURL, req, "")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Available)
		s.Require().NotNil(resp.Room)
		s.Equal("Double", resp.Room.RoomType)
		s.Equal(3, resp.Room.TotalNights)
		s.InDelta(180.0, resp.Room.PricePerNight, 0.001)
		s.InDelta(540.0, resp.Room.TotalPrice, 0.001)
		s.Equal(2, resp.Room.AvailableUnits)
		s.Empty(resp.Message)
	})

	s.Run("unknown room type is reported, not an error", func() {
		req := builder.NewBookingBuilder().WithRoomType("Penthouse").BuildAvailabilityDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, availabilityURL, req, "")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.Available)
		s.Nil(resp.Room)
		s.Equal("Room type not found", resp.Message)
	})

	s.Run("inactive room type is not bookable", func() {
		dbtest.CreateRoomType(s.T(), s.DB, builder.NewRoomBuilder().AsInactive())
		req := builder.NewBookingBuilder().BuildAvailabilityDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, availabilityURL, req, "")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.Available)
		s.Equal("Room type not found", resp.Message)
	})

	s.Run("fully booked dates", func() {
		room := s.seedRoom(1)
		dbtest.CreateBooking(s.T(), s.DB, builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.RoomTypeID = room.ID
		}))
		req := builder.NewBookingBuilder().BuildAvailabilityDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, availabilityURL, req, "")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.Available)
		s.Equal("Room not available for selected dates", resp.Message)
	})

	s.Run("date errors", func() {
		s.seedRoom(2)
		base := builder.NewBookingBuilder().BuildAvailabilityDTO()
		cases := []struct {
			name   string
			mutate func(map[string]any)
			code   string
		}{
			{name: "slash format", mutate: testutil.Field("check_in", "02/10/2099"), code: httperr.CodeInvalidDateFormat},
			{name: "missing check-out", mutate: testutil.Field("check_out", nil), code: httperr.CodeInvalidDateFormat},
			{name: "check-in in the past", mutate: testutil.Field("check_in", "2000-01-01"), code: httperr.CodeInvalidDateRange},
			{name: "check-out before check-in", mutate: testutil.Field("check_out", "2099-02-09"), code: httperr.CodeInvalidDateRange},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, availabilityURL, testutil.DtoMap(s.T(), base, tc.mutate), "")
			httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, tc.code)
		}
	})
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("confirmed booking with price snapshot", func() {
		s.seedRoom(2)
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SpecialRequests = "Late check-in"
		}).BuildDTO()

		status, resp := s.book(req)

		s.Require().Equal(http.StatusCreated, status)
		s.Equal(resdto.MessageBookingCreated, resp.Message)
		s.Regexp(`^LUX\d{6}$`, resp.Booking.BookingCode)
		s.Equal("confirmed", resp.Booking.Status)
		s.Equal("Double", resp.Booking.RoomType)
		s.Equal("2099-02-10T00:00:00", resp.Booking.CheckIn)
		s.Equal("2099-02-13T00:00:00", resp.Booking.CheckOut)
		s.Equal(3, resp.Booking.TotalNights)
		s.InDelta(540.0, resp.Booking.TotalPrice, 0.001)
		s.Equal("Late check-in", resp.Booking.SpecialRequests)
		s.Equal("confirmed", dbtest.BookingStatus(s.T(), s.DB, resp.Booking.BookingCode))
	})

	s.Run("last unit then capacity exceeded", func() {
		s.seedRoom(1)
		req := builder.NewBookingBuilder().BuildDTO()

		first, _ := s.book(req)
		second, _ := s.book(req)

		s.Equal(http.StatusCreated, first)
		s.Equal(http.StatusConflict, second)
		s.Equal(1, dbtest.CountBookings(s.T(), s.DB))
	})

	s.Run("touching stays share a unit", func() {
		s.seedRoom(1)
		stay := builder.NewBookingBuilder().BuildDTO()
		next := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CheckIn = b.CheckOut
			b.CheckOut = b.CheckOut.AddDate(0, 0, 2)
		}).BuildDTO()

		first, _ := s.book(stay)
		second, _ := s.book(next)

		s.Equal(http.StatusCreated, first)
		s.Equal(http.StatusCreated, second)
	})

	s.Run("unknown room type", func() {
		req := builder.NewBookingBuilder().WithRoomType("Penthouse").BuildDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")

		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, httperr.CodeRoomTypeNotFound)
		s.Equal(0, dbtest.CountBookings(s.T(), s.DB))
	})

	s.Run("concurrent requests never oversell", func() {
		s.seedRoom(1)
		req := builder.NewBookingBuilder().BuildDTO()

		const workers = 8
		statuses := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				r := req
				r.Email = fmt.Sprintf("guest%d@example.com", i)
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, r, "")
				statuses[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, st := range statuses {
			switch st {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		s.Equal(1, created, "statuses: %v", statuses)
		s.Equal(workers-1, conflicts, "statuses: %v", statuses)
		s.Equal(1, dbtest.CountBookings(s.T(), s.DB))
	})
}

func (s *bookingSuite) TestCancelBooking() {
	s.Run("cancel frees the unit and is terminal", func() {
		s.seedRoom(1)
		req := builder.NewBookingBuilder().BuildDTO()
		_, created := s.book(req)
		s.Require().NotNil(created)
		cancelURL := bookingsURL + "/" + created.Booking.BookingCode + "/cancel"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, cancelURL, nil, "")
		var resp resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("cancelled", resp.Status)
		s.Equal(created.Booking.BookingCode, resp.BookingCode)

		again := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, cancelURL, nil, "")
		httptest.AssertErrorCode(s.T(), again, http.StatusConflict, httperr.CodeBookingAlreadyCancelled)
		s.Equal("cancelled", dbtest.BookingStatus(s.T(), s.DB, created.Booking.BookingCode))

		rebook, _ := s.book(req)
		s.Equal(http.StatusCreated, rebook)
	})

	s.Run("unknown and malformed codes", func() {
		for _, code := range []string{"LUX000000", "NOPE"} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, bookingsURL+"/"+code+"/cancel", nil, "")
			httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, httperr.CodeBookingNotFound)
		}
	})
}

func (s *bookingSuite) TestListBookings() {
	s.Run("newest first with room enrichment", func() {
		room := s.seedRoom(5)
		older := builder.NewBookingBuilder().WithCode("LUX000001").With(func(b *builder.BookingBuilder) {
			b.RoomTypeID = room.ID
		})
		newer := builder.NewBookingBuilder().WithCode("LUX000002").With(func(b *builder.BookingBuilder) {
			b.RoomTypeID = room.ID
			b.CreatedAt = b.CreatedAt.AddDate(0, 0, 1)
		})
		dbtest.CreateBooking(s.T(), s.DB, older)
		dbtest.CreateBooking(s.T(), s.DB, newer)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, "")

		var resp []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 2)
		s.Equal("LUX000002", resp[0].BookingCode)
		s.Equal("LUX000001", resp[1].BookingCode)
		s.Equal("Double", resp[0].RoomType)
		s.Require().NotNil(resp[0].RoomName)
		s.Equal(room.Name, *resp[0].RoomName)
	})

	s.Run("inactive room type degrades to Unknown", func() {
		room := builder.NewRoomBuilder().AsInactive()
		dbtest.CreateRoomType(s.T(), s.DB, room)
		dbtest.CreateBooking(s.T(), s.DB, builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.RoomTypeID = room.ID
		}))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, "")

		var resp []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal("Unknown", resp[0].RoomType)
		s.Nil(resp[0].RoomName)
	})

	s.Run("get by code", func() {
		room := s.seedRoom(5)
		dbtest.CreateBooking(s.T(), s.DB, builder.NewBookingBuilder().WithCode("LUX424242").With(func(b *builder.BookingBuilder) {
			b.RoomTypeID = room.ID
		}))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/LUX424242", nil, "")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("LUX424242", resp.BookingCode)

		missing := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/LUX999999", nil, "")
		httptest.AssertErrorCode(s.T(), missing, http.StatusNotFound, httperr.CodeBookingNotFound)
	})
}
