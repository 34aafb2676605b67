package security

import (
	"errors"

	"github.com/consentvault/consentvault-backend/models"
)

type EnforceSecurityRetentionPolicy interface {
	EnforceSecurity
	ReadRetentionPolicy(policy models.RetentionPolicy) error
	ListRetentionPolicies(organizationId string) error
	WriteRetentionPolicy(organizationId string) error
}

type EnforceSecurityRetentionPolicyImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityRetentionPolicyImpl) ReadRetentionPolicy(policy models.RetentionPolicy) error {
	return errors.Join(
		e.Permission(models.RETENTION_POLICY_READ),
		e.ReadOrganization(policy.OrganizationId),
	)
}

func (e *EnforceSecurityRetentionPolicyImpl) ListRetentionPolicies(organizationId string) error {
	return errors.Join(
		e.Permission(models.RETENTION_POLICY_READ),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityRetentionPolicyImpl) WriteRetentionPolicy(organizationId string) error {
	return errors.Join(
		e.Permission(models.RETENTION_POLICY_WRITE),
		e.ReadOrganization(organizationId),
	)
}
