package controllers

import (
	"unistay/dto"
	"unistay/middleware"
	"unistay/response"
	"unistay/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetProfile godoc
// @Summary Current user
// @Tags users
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /profile [get]
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	user, err := uc.users.Profile(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, dto.NewUserResponse(user))
}

// GetSaved godoc
// @Summary Saved listings
// @Tags users
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /saved [get]
func (uc *UserController) GetSaved(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	saved, err := uc.users.Saved(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, dto.NewPropertyCards(saved))
}

// ToggleSaved godoc
// @Summary Save or unsave a listing
// @Tags users
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Success 200 {object} response.Response
// @Router /saved/{id} [put]
func (uc *UserController) ToggleSaved(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	saved, added, err := uc.users.ToggleSaved(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, gin.H{"saved": added, "savedProperties": saved})
}
