package security

import (
	"github.com/cockroachdb/errors"

	"github.com/consentvault/consentvault-backend/models"
)

type EnforceSecurityUser interface {
	EnforceSecurity
	ReadUser(user models.User) error
	ListUsers(organizationId string) error
	CreateUser(input models.CreateUser) error
	UpdateUser(targetUser models.User, input models.UpdateUser) error
	DeleteUser(user models.User) error
}

type EnforceSecurityUserImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityUserImpl) ReadUser(user models.User) error {
	return errors.Join(
		e.Permission(models.USER_READ),
		e.ReadOrganization(user.OrganizationId),
	)
}

func (e *EnforceSecurityUserImpl) ListUsers(organizationId string) error {
	return errors.Join(
		e.Permission(models.USER_READ),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityUserImpl) CreateUser(input models.CreateUser) error {
	if input.Role == models.SUPERADMIN && !e.Credentials.IsSuperadmin() {
		return errors.Wrap(models.ForbiddenError,
			"only superadmins can create superadmins")
	}

	return errors.Join(
		e.Permission(models.USER_CREATE),
		e.ReadOrganization(input.OrganizationId),
	)
}

func (e *EnforceSecurityUserImpl) UpdateUser(targetUser models.User, input models.UpdateUser) error {
	if input.Role != nil && *input.Role == models.SUPERADMIN && !e.Credentials.IsSuperadmin() {
		return errors.Wrap(models.ForbiddenError,
			"only superadmins can grant the superadmin role")
	}

	// An admin cannot strip their own admin role.
	if input.Role != nil &&
		e.Credentials.ActorIdentity.UserId == targetUser.Id &&
		*input.Role < e.Credentials.Role {
		return errors.Wrap(models.BadParameterError, "cannot demote yourself")
	}

	return errors.Join(
		e.Permission(models.USER_UPDATE),
		e.ReadOrganization(targetUser.OrganizationId),
	)
}

func (e *EnforceSecurityUserImpl) DeleteUser(user models.User) error {
	if e.Credentials.ActorIdentity.UserId == user.Id {
		return errors.Wrap(models.BadParameterError, "cannot delete yourself")
	}

	return errors.Join(
		e.Permission(models.USER_DELETE),
		e.ReadOrganization(user.OrganizationId),
	)
}
