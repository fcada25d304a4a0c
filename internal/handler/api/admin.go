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

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin  commands.AdminCommands
	spaces commands.StudySpaceCommands
}

func NewAdminHandler(admin commands.AdminCommands, spaces commands.StudySpaceCommands) *AdminHandler {
	return &AdminHandler{admin: admin, spaces: spaces}
}

// @Summary Admin login
// @Description Exchange the shared admin secret for an admin token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Admin login request"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.admin.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidAdminSecret) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid admin password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.AdminLoginResponse{Token: result.Token})
}

// @Summary Create study space
// @Description Create a new study space listing; availableSeats defaults to totalSeats
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateStudySpaceRequest true "Create study space request"
// @Success 201 {object} resdto.StudySpaceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/study-spaces [post]
func (h *AdminHandler) CreateStudySpace(c *gin.Context) {
	var req reqdto.CreateStudySpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Name, address, and totalSeats are required", nil)
		return
	}

	sp, err := h.spaces.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidTotalSeats):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Total seats must be a positive number", nil)
		case errors.Is(err, errs.ErrSeatsOutOfRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Available seats must be between 0 and total seats", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create study space", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStudySpace(sp))
}

// @Summary Update availability
// @Description Directly set a study space's available seats
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Study space ID"
// @Param request body reqdto.UpdateAvailabilityRequest true "Update availability request"
// @Success 200 {object} resdto.StudySpaceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/study-spaces/{id} [patch]
func (h *AdminHandler) UpdateAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid study space id", nil)
		return
	}

	var req reqdto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Valid availableSeats value is required", nil)
		return
	}

	sp, err := h.spaces.SetAvailability(c.Request.Context(), id, *req.AvailableSeats)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrStudySpaceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Study space not found", nil)
		case errors.Is(err, errs.ErrSeatsOutOfRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Available seats cannot exceed total seats", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update study space availability", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromStudySpace(sp))
}
