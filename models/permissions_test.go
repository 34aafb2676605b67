package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePermissionsAreMonotonic(t *testing.T) {
	ordered := []Role{VIEWER, AUDITOR, ADMIN, SUPERADMIN}

	for i := 1; i < len(ordered); i++ {
		lower, higher := ordered[i-1], ordered[i]
		for _, permission := range ROLES_PERMISSIONS[lower] {
			assert.True(t, higher.HasPermission(permission),
				"%s should keep %s from %s", higher, permission, lower)
		}
		assert.Greater(t, len(ROLES_PERMISSIONS[higher]), len(ROLES_PERMISSIONS[lower]))
	}
}

func TestRolePermissions(t *testing.T) {
	t.Run("viewer reads but never writes or exports", func(t *testing.T) {
		assert.True(t, VIEWER.HasPermission(AUDIT_ENTRIES_READ))
		assert.True(t, VIEWER.HasPermission(CONSENT_READ))
		assert.False(t, VIEWER.HasPermission(AUDIT_EXPORT))
		assert.False(t, VIEWER.HasPermission(CONSENT_WRITE))
	})

	t.Run("auditor exports and verifies but does not write", func(t *testing.T) {
		assert.True(t, AUDITOR.HasPermission(AUDIT_EXPORT_SIGNED))
		assert.True(t, AUDITOR.HasPermission(AUDIT_CHAIN_VERIFY))
		assert.False(t, AUDITOR.HasPermission(CONSENT_WRITE))
		assert.False(t, AUDITOR.HasPermission(USER_CREATE))
	})

	t.Run("admin writes but stays inside its organization", func(t *testing.T) {
		assert.True(t, ADMIN.HasPermission(CONSENT_WRITE))
		assert.True(t, ADMIN.HasPermission(APIKEY_CREATE))
		assert.False(t, ADMIN.HasPermission(ORGANIZATIONS_LIST))
		assert.False(t, ADMIN.HasPermission(ORGANIZATIONS_CREATE))
	})

	t.Run("no role has no permissions", func(t *testing.T) {
		assert.Empty(t, ROLES_PERMISSIONS[NO_ROLE])
		assert.False(t, NO_ROLE.HasPermission(AUDIT_ENTRIES_READ))
	})
}
