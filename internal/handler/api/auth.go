package api

import (
	"errors"
	"net/http"

	reqdto "studyspot/internal/handler/dto/request"
	resdto "studyspot/internal/handler/dto/response"
	"studyspot/internal/handler/httperr"
	"studyspot/internal/pkg/errs"
	"studyspot/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users commands.UserCommands
}

func NewAuthHandler(users commands.UserCommands) *AuthHandler {
	return &AuthHandler{users: users}
}

// @Summary Register user
// @Description Create a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterUserRequest true "Register request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	u, err := h.users.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateUsername):
			httperr.AbortWithError(c, http.StatusConflict, err, "Username already taken", nil)
		case errors.Is(err, errs.ErrDuplicateEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Registration failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUser(u))
}
