package controllers

import (
	"unistay/dto"
	"unistay/errors"
	"unistay/response"
	"unistay/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func bindError(err error) error {
	return errors.NewAppError(errors.ErrCodeValidation, "Invalid request body", err)
}

// Register godoc
// @Summary Create a student account
// @Tags auth
// @Accept json
// @Param body body dto.RegisterInput true "Account"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	user, token, err := ac.auth.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		response.Fail(c, err)
		return
	}
	ac.auth.SetTokenCookies(c, token)
	response.Created(c, dto.LoginResponse{User: dto.NewUserResponse(user), AccessToken: token})
}

// Login godoc
// @Summary Sign in
// @Tags auth
// @Accept json
// @Param body body dto.LoginInput true "Credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	user, token, err := ac.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		response.Fail(c, err)
		return
	}
	ac.auth.SetTokenCookies(c, token)
	response.Success(c, dto.LoginResponse{User: dto.NewUserResponse(user), AccessToken: token})
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Success 200 {object} response.Response
// @Router /auth/logout [delete]
func (ac *AuthController) Logout(c *gin.Context) {
	ac.auth.ClearTokenCookies(c)
	response.Success(c, nil)
}
