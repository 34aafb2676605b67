package security

import (
	"errors"

	"github.com/consentvault/consentvault-backend/models"
)

type EnforceSecurityPurpose interface {
	EnforceSecurity
	ReadPurpose(purpose models.Purpose) error
	ListPurposes(organizationId string) error
	WritePurpose(organizationId string) error
}

type EnforceSecurityPurposeImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityPurposeImpl) ReadPurpose(purpose models.Purpose) error {
	return errors.Join(
		e.Permission(models.PURPOSE_READ),
		e.ReadOrganization(purpose.OrganizationId),
	)
}

func (e *EnforceSecurityPurposeImpl) ListPurposes(organizationId string) error {
	return errors.Join(
		e.Permission(models.PURPOSE_READ),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityPurposeImpl) WritePurpose(organizationId string) error {
	return errors.Join(
		e.Permission(models.PURPOSE_WRITE),
		e.ReadOrganization(organizationId),
	)
}
