package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/consentvault/consentvault-backend/models"
)

type RightsRequest struct {
	Id             string      `json:"id"`
	OrganizationId string      `json:"organization_id"`
	ExternalUserId string      `json:"external_user_id"`
	Right          string      `json:"right"`
	Status         string      `json:"status"`
	Reason         null.String `json:"reason"`
	OpenedAt       time.Time   `json:"opened_at"`
	ClosedAt       null.Time   `json:"closed_at"`
}

func AdaptRightsRequestDto(request models.RightsRequest) RightsRequest {
	return RightsRequest{
		Id:             request.Id,
		OrganizationId: request.OrganizationId,
		ExternalUserId: request.ExternalUserId,
		Right:          string(request.Right),
		Status:         string(request.Status),
		Reason:         null.NewString(request.Reason, request.Reason != ""),
		OpenedAt:       request.OpenedAt,
		ClosedAt:       null.TimeFromPtr(request.ClosedAt),
	}
}

type CreateRightsRequestBody struct {
	ExternalUserId string `json:"external_user_id" binding:"required"`
	Right          string `json:"right" binding:"required"`
}

type UpdateRightsRequestBody struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}
