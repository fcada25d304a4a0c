package api

import (
	"errors"
	"net/http"

	reqdto "studyspot/internal/handler/dto/request"
	resdto "studyspot/internal/handler/dto/response"
	"studyspot/internal/handler/httperr"
	"studyspot/internal/pkg/errs"
	"studyspot/internal/usecase/commands"
	"studyspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Attach a 1-5 rating with optional comment to a study space
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	r, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrStudySpaceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Study space not found", nil)
		case errors.Is(err, errs.ErrInvalidRating):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Rating must be between 1 and 5", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create review", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReview(r))
}

// @Summary List reviews
// @Description List reviews, optionally narrowed by study space
// @Tags reviews
// @Produce json
// @Param studySpaceId query int false "Filter by study space id"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	spaceID, err := optionalInt64Query(c, "studySpaceId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid studySpaceId", nil)
		return
	}

	items, err := h.q.List(c.Request.Context(), spaceID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviews(items))
}
