package dto

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type RetentionPolicy struct {
	Id             string    `json:"id"`
	OrganizationId string    `json:"organization_id"`
	PurposeId      string    `json:"purpose_id"`
	RetentionDays  int       `json:"retention_days"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

func AdaptRetentionPolicyDto(policy models.RetentionPolicy) RetentionPolicy {
	return RetentionPolicy{
		Id:             policy.Id,
		OrganizationId: policy.OrganizationId,
		PurposeId:      policy.PurposeId,
		RetentionDays:  policy.RetentionDays,
		Active:         policy.Active,
		CreatedAt:      policy.CreatedAt,
	}
}

type CreateRetentionPolicyBody struct {
	PurposeId     string `json:"purpose_id" binding:"required,uuid"`
	RetentionDays int    `json:"retention_days" binding:"required"`
}

type UpdateRetentionPolicyBody struct {
	RetentionDays *int  `json:"retention_days"`
	Active        *bool `json:"active"`
}
