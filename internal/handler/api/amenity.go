package api

import (
	"net/http"

	resdto "studyspot/internal/handler/dto/response"
	"studyspot/internal/handler/httperr"
	"studyspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AmenityHandler struct {
	q queries.AmenityQueries
}

func NewAmenityHandler(q queries.AmenityQueries) *AmenityHandler {
	return &AmenityHandler{q: q}
}

// @Summary List amenities
// @Description List every amenity in the catalog
// @Tags amenities
// @Produce json
// @Success 200 {array} resdto.AmenityResponse
// @Failure 500 {object} map[string]string
// @Router /amenities [get]
func (h *AmenityHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch amenities", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAmenities(items))
}
