package security

import (
	"github.com/cockroachdb/errors"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/utils"
)

type EnforceSecurity interface {
	Permission(permission models.Permission) error
	ReadOrganization(organizationId string) error
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

func (e *EnforceSecurityImpl) Permission(permission models.Permission) error {
	if !e.Credentials.Role.HasPermission(permission) {
		return errors.Wrapf(models.ForbiddenError,
			"missing permission %s", permission)
	}
	return nil
}

// ReadOrganization denies cross-tenant access. The denial surfaces as a not
// found error so that probing for other tenants' object ids reveals nothing.
func (e *EnforceSecurityImpl) ReadOrganization(organizationId string) error {
	return utils.EnforceOrganizationAccess(e.Credentials, organizationId)
}
