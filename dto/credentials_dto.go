package dto

import (
	"github.com/consentvault/consentvault-backend/models"
)

type Credentials struct {
	OrganizationId string   `json:"organization_id"`
	Role           string   `json:"role"`
	ActorIdentity  Identity `json:"actor_identity"`
}

type Identity struct {
	UserId     string `json:"user_id,omitempty"`
	Email      string `json:"email,omitempty"`
	ApiKeyId   string `json:"api_key_id,omitempty"`
	ApiKeyName string `json:"api_key_name,omitempty"`
}

func AdaptCredentialsDto(creds models.Credentials) Credentials {
	return Credentials{
		OrganizationId: creds.OrganizationId,
		Role:           creds.Role.String(),
		ActorIdentity: Identity{
			UserId:     creds.ActorIdentity.UserId,
			Email:      creds.ActorIdentity.Email,
			ApiKeyId:   creds.ActorIdentity.ApiKeyId,
			ApiKeyName: creds.ActorIdentity.ApiKeyName,
		},
	}
}

func AdaptCredentials(dto Credentials) models.Credentials {
	return models.Credentials{
		OrganizationId: dto.OrganizationId,
		Role:           models.RoleFromString(dto.Role),
		ActorIdentity: models.Identity{
			UserId:     dto.ActorIdentity.UserId,
			Email:      dto.ActorIdentity.Email,
			ApiKeyId:   dto.ActorIdentity.ApiKeyId,
			ApiKeyName: dto.ActorIdentity.ApiKeyName,
		},
	}
}
