package dto

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type User struct {
	Id             string    `json:"id"`
	OrganizationId string    `json:"organization_id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

func AdaptUserDto(user models.User) User {
	return User{
		Id:             user.Id,
		OrganizationId: user.OrganizationId,
		Email:          user.Email,
		Role:           user.Role.String(),
		CreatedAt:      user.CreatedAt,
	}
}

type CreateUserBody struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type UpdateUserBody struct {
	Role *string `json:"role"`
}
