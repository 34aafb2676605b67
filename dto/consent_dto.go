package dto

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type Consent struct {
	Id             string    `json:"id"`
	OrganizationId string    `json:"organization_id"`
	ExternalUserId string    `json:"external_user_id"`
	PurposeId      string    `json:"purpose_id"`
	Status         string    `json:"status"`
	Method         string    `json:"method"`
	LastEventAt    time.Time `json:"last_event_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func AdaptConsentDto(consent models.Consent) Consent {
	return Consent{
		Id:             consent.Id,
		OrganizationId: consent.OrganizationId,
		ExternalUserId: consent.ExternalUserId,
		PurposeId:      consent.PurposeId,
		Status:         string(consent.Status),
		Method:         string(consent.Method),
		LastEventAt:    consent.LastEventAt,
		CreatedAt:      consent.CreatedAt,
	}
}

type RecordConsentBody struct {
	ExternalUserId string `json:"external_user_id" binding:"required"`
	PurposeId      string `json:"purpose_id" binding:"required,uuid"`
	Status         string `json:"status" binding:"required"`
	Method         string `json:"method" binding:"required"`
}

type ConsentFilters struct {
	ExternalUserId string `form:"external_user_id"`
	PurposeId      string `form:"purpose_id"`
	Status         string `form:"status"`
}
