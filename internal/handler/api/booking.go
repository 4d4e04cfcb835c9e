package api

import (
	"net/http"
	"strings"

	reqdto "luxora-booking/internal/handler/dto/request"
	resdto "luxora-booking/internal/handler/dto/response"
	"luxora-booking/internal/handler/middleware"
	"luxora-booking/internal/usecase/commands"
	"luxora-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds         commands.BookingCommands
	q            queries.BookingQueries
	availability queries.AvailabilityQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, availability queries.AvailabilityQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Check availability
// @Description Check whether a room type has a free unit for the given stay
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Availability request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/check-availability [post]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	view, err := h.availability.CheckAvailability(c.Request.Context(), strings.TrimSpace(req.RoomType), req.CheckIn, req.CheckOut)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Create booking
// @Description Book one unit of a room type. A bearer token, when present, links the booking to the account.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.cmds.Create(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.GetByCode(c.Request.Context(), result.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+result.Code)
	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Message: resdto.MessageBookingCreated,
		Booking: resdto.FromBookingView(view),
	})
}

// @Summary List bookings
// @Description List all bookings, newest first
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List my bookings
// @Description List bookings made by the authenticated account
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings/me [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param code path string true "Booking code" example(LUX123456)
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{code} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a booking by its public code
// @Tags bookings
// @Produce json
// @Param code path string true "Booking code"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{code}/cancel [put]
func (h *BookingHandler) Cancel(c *gin.Context) {
	result, err := h.cmds.Cancel(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelledBooking(result.Code, result.Status))
}
