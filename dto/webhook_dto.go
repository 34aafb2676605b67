package dto

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type Webhook struct {
	Id             string    `json:"id"`
	OrganizationId string    `json:"organization_id"`
	Url            string    `json:"url"`
	EventTypes     []string  `json:"event_types"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// The webhook secret never leaves the backend through list or get endpoints.
func AdaptWebhookDto(webhook models.Webhook) Webhook {
	return Webhook{
		Id:             webhook.Id,
		OrganizationId: webhook.OrganizationId,
		Url:            webhook.Url,
		EventTypes:     webhook.EventTypes,
		Active:         webhook.Active,
		CreatedAt:      webhook.CreatedAt,
	}
}

type CreateWebhookBody struct {
	Url        string   `json:"url" binding:"required"`
	EventTypes []string `json:"event_types"`
}

type UpdateWebhookBody struct {
	Url        *string  `json:"url"`
	EventTypes []string `json:"event_types"`
	Active     *bool    `json:"active"`
}
