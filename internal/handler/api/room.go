package api

import (
	"net/http"
	"strconv"

	reqdto "luxora-booking/internal/handler/dto/request"
	resdto "luxora-booking/internal/handler/dto/response"
	"luxora-booking/internal/handler/httperr"
	"luxora-booking/internal/usecase/commands"
	"luxora-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	cmds commands.RoomTypeCommands
	q    queries.RoomTypeQueries
}

func NewRoomHandler(cmds commands.RoomTypeCommands, q queries.RoomTypeQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary List rooms
// @Description List room types ordered by price. Inactive ones are hidden unless include_inactive is true.
// @Tags rooms
// @Produce json
// @Param include_inactive query bool false "Include inactive rooms"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	includeInactive := false
	if raw := c.Query("include_inactive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "include_inactive must be a boolean", nil)
			return
		}
		includeInactive = v
	}
	views, err := h.q.List(c.Request.Context(), includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/rooms/"+id.String())
	h.render(c, http.StatusCreated, id)
}

// @Summary Update room
// @Description Partial update; omitted fields keep their value
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Deactivate room
// @Description Soft delete: the room is hidden from listings and availability
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Deactivate(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	if err := h.cmds.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Seed sample rooms
// @Description Create the Single, Double and Suite samples when no rooms exist
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.SeedResponse
// @Router /rooms/init-sample-data [post]
func (h *RoomHandler) SeedSamples(c *gin.Context) {
	result, err := h.cmds.SeedSamples(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SeedResponse{Message: result.Message, Created: result.Created})
}

func (h *RoomHandler) render(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, resdto.FromRoomTypeView(view))
}

func parseRoomID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeRoomNotFound, "Room not found", nil)
		return uuid.Nil, false
	}
	return id, true
}
