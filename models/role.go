package models

import "slices"

type Role int

// Roles are strictly ordered: every permission granted to a role is also
// granted to the roles above it. SUPERADMIN is a platform-level operator and
// is not tied to a single organization.
const (
	NO_ROLE Role = iota
	VIEWER
	AUDITOR
	ADMIN
	SUPERADMIN
)

func (r Role) String() string {
	switch r {
	case NO_ROLE:
		return "NO_ROLE"
	case VIEWER:
		return "VIEWER"
	case AUDITOR:
		return "AUDITOR"
	case ADMIN:
		return "ADMIN"
	case SUPERADMIN:
		return "SUPERADMIN"
	default:
		return "UNKNOWN_ROLE"
	}
}

func (r Role) Permissions() []Permission {
	permissions := ROLES_PERMISSIONS[r]
	if permissions == nil {
		return []Permission{}
	}
	return permissions
}

func (r Role) HasPermission(permission Permission) bool {
	return slices.Contains(r.Permissions(), permission)
}

func RoleFromString(s string) Role {
	switch s {
	case "VIEWER":
		return VIEWER
	case "AUDITOR":
		return AUDITOR
	case "ADMIN":
		return ADMIN
	case "SUPERADMIN":
		return SUPERADMIN
	}
	return NO_ROLE
}
