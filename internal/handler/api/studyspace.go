package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	resdto "studyspot/internal/handler/dto/response"
	"studyspot/internal/handler/httperr"
	"studyspot/internal/pkg/errs"
	"studyspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StudySpaceHandler struct {
	q queries.StudySpaceQueries
}

func NewStudySpaceHandler(q queries.StudySpaceQueries) *StudySpaceHandler {
	return &StudySpaceHandler{q: q}
}

// @Summary Search study spaces
// @Description Search study spaces by free-text query and required amenity names
// @Tags study-spaces
// @Produce json
// @Param query query string false "Substring matched against name or address"
// @Param filters query string false "Comma-separated required amenity names"
// @Success 200 {array} resdto.DecoratedStudySpaceResponse
// @Failure 500 {object} map[string]string
// @Router /study-spaces [get]
func (h *StudySpaceHandler) Search(c *gin.Context) {
	query := c.Query("query")

	var filters []string
	if raw := c.Query("filters"); raw != "" {
		filters = strings.Split(raw, ",")
	}

	spaces, err := h.q.Search(c.Request.Context(), query, filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch study spaces", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDecoratedSpaces(spaces))
}

// @Summary Get study space
// @Description Get a single decorated study space by id
// @Tags study-spaces
// @Produce json
// @Param id path int true "Study space ID"
// @Success 200 {object} resdto.DecoratedStudySpaceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /study-spaces/{id} [get]
func (h *StudySpaceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid study space id", nil)
		return
	}

	sp, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrStudySpaceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Study space not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch study space details", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDecoratedSpace(sp))
}
