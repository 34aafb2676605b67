package dto

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type Purpose struct {
	Id             string    `json:"id"`
	OrganizationId string    `json:"organization_id"`
	Code           string    `json:"code"`
	Description    string    `json:"description"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

func AdaptPurposeDto(purpose models.Purpose) Purpose {
	return Purpose{
		Id:             purpose.Id,
		OrganizationId: purpose.OrganizationId,
		Code:           purpose.Code,
		Description:    purpose.Description,
		Active:         purpose.Active,
		CreatedAt:      purpose.CreatedAt,
	}
}

type CreatePurposeBody struct {
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
}

type UpdatePurposeBody struct {
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}
