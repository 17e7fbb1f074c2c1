package dto

import (
	"time"

	"unistay/models"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	IsAdmin         bool      `json:"isAdmin"`
	SavedProperties []string  `json:"savedProperties"`
	CreatedAt       time.Time `json:"createdAt"`
}

type LoginResponse struct {
	User        UserResponse `json:"user_info"`
	AccessToken string       `json:"accessToken"`
}

func NewUserResponse(u *models.User) UserResponse {
	saved := make([]string, 0, len(u.SavedProperties))
	saved = append(saved, u.SavedProperties...)
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		IsAdmin:         u.IsAdmin(),
		SavedProperties: saved,
		CreatedAt:       u.CreatedAt,
	}
}
