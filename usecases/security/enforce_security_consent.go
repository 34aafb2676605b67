package security

import (
	"errors"

	"github.com/consentvault/consentvault-backend/models"
)

type EnforceSecurityConsent interface {
	EnforceSecurity
	ReadConsent(consent models.Consent) error
	ListConsents(organizationId string) error
	RecordConsent(organizationId string) error
}

type EnforceSecurityConsentImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityConsentImpl) ReadConsent(consent models.Consent) error {
	return errors.Join(
		e.Permission(models.CONSENT_READ),
		e.ReadOrganization(consent.OrganizationId),
	)
}

func (e *EnforceSecurityConsentImpl) ListConsents(organizationId string) error {
	return errors.Join(
		e.Permission(models.CONSENT_READ),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityConsentImpl) RecordConsent(organizationId string) error {
	return errors.Join(
		e.Permission(models.CONSENT_WRITE),
		e.ReadOrganization(organizationId),
	)
}
