package models

import "time"

// Webhook is a registered delivery endpoint. Delivery reliability is out of
// scope; the configuration and its audit trail are not.
type Webhook struct {
	Id             string
	OrganizationId string
	Url            string
	Secret         string
	EventTypes     []string
	Active         bool
	CreatedAt      time.Time
}

type CreateWebhookInput struct {
	OrganizationId string
	Url            string
	EventTypes     []string
}

type UpdateWebhookInput struct {
	Id         string
	Url        *string
	EventTypes []string
	Active     *bool
}
