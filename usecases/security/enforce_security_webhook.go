package security

import (
	"errors"

	"github.com/consentvault/consentvault-backend/models"
)

type EnforceSecurityWebhook interface {
	EnforceSecurity
	ReadWebhook(webhook models.Webhook) error
	ListWebhooks(organizationId string) error
	WriteWebhook(organizationId string) error
}

type EnforceSecurityWebhookImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityWebhookImpl) ReadWebhook(webhook models.Webhook) error {
	return errors.Join(
		e.Permission(models.WEBHOOK_READ),
		e.ReadOrganization(webhook.OrganizationId),
	)
}

func (e *EnforceSecurityWebhookImpl) ListWebhooks(organizationId string) error {
	return errors.Join(
		e.Permission(models.WEBHOOK_READ),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityWebhookImpl) WriteWebhook(organizationId string) error {
	return errors.Join(
		e.Permission(models.WEBHOOK_WRITE),
		e.ReadOrganization(organizationId),
	)
}
