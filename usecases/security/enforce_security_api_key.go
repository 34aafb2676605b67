package security

import (
	"errors"

	"github.com/consentvault/consentvault-backend/models"
)

type EnforceSecurityApiKey interface {
	EnforceSecurity
	ListApiKeys(organizationId string) error
	CreateApiKey(input models.CreateApiKeyInput) error
	DeleteApiKey(apiKey models.ApiKey) error
}

type EnforceSecurityApiKeyImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityApiKeyImpl) ListApiKeys(organizationId string) error {
	return errors.Join(
		e.Permission(models.APIKEY_READ),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityApiKeyImpl) CreateApiKey(input models.CreateApiKeyInput) error {
	return errors.Join(
		e.Permission(models.APIKEY_CREATE),
		e.ReadOrganization(input.OrganizationId),
	)
}

func (e *EnforceSecurityApiKeyImpl) DeleteApiKey(apiKey models.ApiKey) error {
	return errors.Join(
		e.Permission(models.APIKEY_DELETE),
		e.ReadOrganization(apiKey.OrganizationId),
	)
}
