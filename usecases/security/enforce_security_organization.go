package security

import (
	"errors"

	"github.com/consentvault/consentvault-backend/models"
)

type EnforceSecurityOrganization interface {
	EnforceSecurity
	ReadOrganizationDetails(organizationId string) error
	ListOrganizations() error
	CreateOrganization() error
	UpdateOrganization(organizationId string) error
}

type EnforceSecurityOrganizationImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityOrganizationImpl) ReadOrganizationDetails(organizationId string) error {
	return errors.Join(
		e.Permission(models.ORGANIZATIONS_READ),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityOrganizationImpl) ListOrganizations() error {
	return e.Permission(models.ORGANIZATIONS_LIST)
}

func (e *EnforceSecurityOrganizationImpl) CreateOrganization() error {
	return e.Permission(models.ORGANIZATIONS_CREATE)
}

func (e *EnforceSecurityOrganizationImpl) UpdateOrganization(organizationId string) error {
	return errors.Join(
		e.Permission(models.ORGANIZATIONS_UPDATE),
		e.ReadOrganization(organizationId),
	)
}
