package api

import (
	"errors"
	"net/http"

	reqdto "taller-api/internal/handler/dto/request"
	resdto "taller-api/internal/handler/dto/response"
	"taller-api/internal/handler/middleware"
	"taller-api/internal/usecase/commands"
	"taller-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary Update profile
// @Description Update the current user's profile fields
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile request"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.userCommands.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProfileValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid profile data",
			})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Change password
// @Description Change the current user's password
// @Tags users
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ChangePasswordRequest true "Password request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.userCommands.ChangePassword(c.Request.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrWrongPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Current password is incorrect",
			})
		case errors.Is(err, commands.ErrProfileValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "New password is too weak",
			})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Plate history
// @Description List the plates the current user has registered over time
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PlateHistoryResponse
// @Failure 401 {object} map[string]string
// @Router /plate-history [get]
func (h *UserHandler) GetPlateHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.userQueries.GetPlateHistory(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlateHistoryViews(views))
}
