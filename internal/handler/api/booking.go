package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "studyspot/internal/handler/dto/request"
	resdto "studyspot/internal/handler/dto/response"
	"studyspot/internal/handler/httperr"
	"studyspot/internal/pkg/errs"
	"studyspot/internal/usecase/commands"
	"studyspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve seats at a study space; rejected when requested seats exceed availability
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	b, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrStudySpaceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Study space not found", nil)
		case errors.Is(err, errs.ErrNotEnoughSeats):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Not enough seats available for booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create booking", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary List bookings
// @Description List bookings, optionally narrowed by user or study space
// @Tags bookings
// @Produce json
// @Param userId query int false "Filter by user id"
// @Param studySpaceId query int false "Filter by study space id"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid userId", nil)
		return
	}
	spaceID, err := optionalInt64Query(c, "studySpaceId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid studySpaceId", nil)
		return
	}

	items, err := h.q.List(c.Request.Context(), userID, spaceID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookings(items))
}

func optionalInt64Query(c *gin.Context, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
