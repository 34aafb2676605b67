package security

import (
	"errors"

	"github.com/consentvault/consentvault-backend/models"
)

type EnforceSecurityRightsRequest interface {
	EnforceSecurity
	ReadRightsRequest(request models.RightsRequest) error
	ListRightsRequests(organizationId string) error
	WriteRightsRequest(organizationId string) error
}

type EnforceSecurityRightsRequestImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityRightsRequestImpl) ReadRightsRequest(request models.RightsRequest) error {
	return errors.Join(
		e.Permission(models.RIGHTS_REQUEST_READ),
		e.ReadOrganization(request.OrganizationId),
	)
}

func (e *EnforceSecurityRightsRequestImpl) ListRightsRequests(organizationId string) error {
	return errors.Join(
		e.Permission(models.RIGHTS_REQUEST_READ),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityRightsRequestImpl) WriteRightsRequest(organizationId string) error {
	return errors.Join(
		e.Permission(models.RIGHTS_REQUEST_WRITE),
		e.ReadOrganization(organizationId),
	)
}
