package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consentvault/consentvault-backend/models"
)

func ledgerEnforcer(role models.Role, organizationId string) *EnforceSecurityLedgerImpl {
	creds := models.Credentials{
		OrganizationId: organizationId,
		Role:           role,
	}
	return &EnforceSecurityLedgerImpl{
		EnforceSecurity: &EnforceSecurityImpl{Credentials: creds},
		Credentials:     creds,
	}
}

func TestEnforceSecurityLedger(t *testing.T) {
	const orgId = "org-1"

	t.Run("viewer reads entries of its own organization", func(t *testing.T) {
		e := ledgerEnforcer(models.VIEWER, orgId)
		assert.NoError(t, e.ReadAuditEntries(orgId))
		assert.NoError(t, e.ReadMetrics(orgId))
	})

	t.Run("viewer cannot export or verify", func(t *testing.T) {
		e := ledgerEnforcer(models.VIEWER, orgId)
		assert.ErrorIs(t, e.ExportAuditEntries(orgId, false), models.ForbiddenError)
		assert.ErrorIs(t, e.VerifyChain(orgId), models.ForbiddenError)
	})

	t.Run("auditor exports signed bundles", func(t *testing.T) {
		e := ledgerEnforcer(models.AUDITOR, orgId)
		assert.NoError(t, e.ExportAuditEntries(orgId, true))
		assert.NoError(t, e.VerifyChain(orgId))
	})

	t.Run("cross organization access reads as not found", func(t *testing.T) {
		e := ledgerEnforcer(models.ADMIN, orgId)
		err := e.ReadAuditEntries("org-2")
		assert.ErrorIs(t, err, models.NotFoundError)
		assert.NotErrorIs(t, err, models.ForbiddenError)
	})

	t.Run("superadmin crosses organizations", func(t *testing.T) {
		e := ledgerEnforcer(models.SUPERADMIN, orgId)
		assert.NoError(t, e.ReadAuditEntries("org-2"))
		assert.NoError(t, e.ExportAuditEntries("org-2", true))
	})
}
