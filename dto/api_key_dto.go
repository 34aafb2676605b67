package dto

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type ApiKey struct {
	Id             string    `json:"id"`
	OrganizationId string    `json:"organization_id"`
	Name           string    `json:"name"`
	Prefix         string    `json:"prefix"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

func AdaptApiKeyDto(apiKey models.ApiKey) ApiKey {
	return ApiKey{
		Id:             apiKey.Id,
		OrganizationId: apiKey.OrganizationId,
		Name:           apiKey.Name,
		Prefix:         apiKey.Prefix,
		Role:           apiKey.Role.String(),
		CreatedAt:      apiKey.CreatedAt,
	}
}

type CreatedApiKey struct {
	ApiKey
	Key string `json:"key"`
}

func AdaptCreatedApiKeyDto(createdApiKey models.CreatedApiKey) CreatedApiKey {
	return CreatedApiKey{
		ApiKey: AdaptApiKeyDto(createdApiKey.ApiKey),
		Key:    createdApiKey.Key,
	}
}

type CreateApiKeyBody struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}
