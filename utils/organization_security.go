package utils

import (
	"github.com/cockroachdb/errors"

	"github.com/consentvault/consentvault-backend/models"
)

// EnforceOrganizationAccess returns NotFoundError (not ForbiddenError) on a
// cross-tenant attempt so responses do not leak which organizations exist.
func EnforceOrganizationAccess(creds models.Credentials, organizationId string) error {
	if creds.IsSuperadmin() {
		return nil
	}

	if organizationId == "" {
		return errors.New("empty organization id passed to EnforceOrganizationAccess")
	}

	if creds.OrganizationId == "" {
		return errors.Wrap(models.ForbiddenError, "credentials do not grant access to any organization")
	}

	if creds.OrganizationId != organizationId {
		return errors.Wrapf(models.NotFoundError, "organization %s", organizationId)
	}
	return nil
}
