package security

import (
	"errors"

	"github.com/consentvault/consentvault-backend/models"
)

type EnforceSecurityLedger interface {
	EnforceSecurity
	ReadAuditEntries(organizationId string) error
	ReadMetrics(organizationId string) error
	VerifyChain(organizationId string) error
	ExportAuditEntries(organizationId string, signed bool) error
}

type EnforceSecurityLedgerImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityLedgerImpl) ReadAuditEntries(organizationId string) error {
	return errors.Join(
		e.Permission(models.AUDIT_ENTRIES_READ),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityLedgerImpl) ReadMetrics(organizationId string) error {
	return errors.Join(
		e.Permission(models.AUDIT_METRICS_READ),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityLedgerImpl) VerifyChain(organizationId string) error {
	return errors.Join(
		e.Permission(models.AUDIT_CHAIN_VERIFY),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityLedgerImpl) ExportAuditEntries(organizationId string, signed bool) error {
	permission := models.AUDIT_EXPORT
	if signed {
		permission = models.AUDIT_EXPORT_SIGNED
	}
	return errors.Join(
		e.Permission(permission),
		e.ReadOrganization(organizationId),
	)
}
