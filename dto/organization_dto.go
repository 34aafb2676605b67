package dto

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type Organization struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// The export secret is write-only from the API's point of view.
func AdaptOrganizationDto(organization models.Organization) Organization {
	return Organization{
		Id:        organization.Id,
		Name:      organization.Name,
		Status:    string(organization.Status),
		CreatedAt: organization.CreatedAt,
	}
}

type CreateOrganizationBody struct {
	Name string `json:"name" binding:"required"`
}

type UpdateOrganizationBody struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}
