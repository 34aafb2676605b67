package models

type Permission int

const (
	AUDIT_ENTRIES_READ Permission = iota
	AUDIT_CHAIN_VERIFY
	AUDIT_METRICS_READ
	AUDIT_EXPORT
	AUDIT_EXPORT_SIGNED

	CONSENT_READ
	CONSENT_WRITE

	PURPOSE_READ
	PURPOSE_WRITE

	RETENTION_POLICY_READ
	RETENTION_POLICY_WRITE

	RIGHTS_REQUEST_READ
	RIGHTS_REQUEST_WRITE

	WEBHOOK_READ
	WEBHOOK_WRITE

	USER_READ
	USER_CREATE
	USER_UPDATE
	USER_DELETE

	ORGANIZATIONS_LIST
	ORGANIZATIONS_CREATE
	ORGANIZATIONS_READ
	ORGANIZATIONS_UPDATE

	APIKEY_READ
	APIKEY_CREATE
	APIKEY_DELETE
)

func (p Permission) String() string {
	switch p {
	case AUDIT_ENTRIES_READ:
		return "AUDIT_ENTRIES_READ"
	case AUDIT_CHAIN_VERIFY:
		return "AUDIT_CHAIN_VERIFY"
	case AUDIT_METRICS_READ:
		return "AUDIT_METRICS_READ"
	case AUDIT_EXPORT:
		return "AUDIT_EXPORT"
	case AUDIT_EXPORT_SIGNED:
		return "AUDIT_EXPORT_SIGNED"
	case CONSENT_READ:
		return "CONSENT_READ"
	case CONSENT_WRITE:
		return "CONSENT_WRITE"
	case PURPOSE_READ:
		return "PURPOSE_READ"
	case PURPOSE_WRITE:
		return "PURPOSE_WRITE"
	case RETENTION_POLICY_READ:
		return "RETENTION_POLICY_READ"
	case RETENTION_POLICY_WRITE:
		return "RETENTION_POLICY_WRITE"
	case RIGHTS_REQUEST_READ:
		return "RIGHTS_REQUEST_READ"
	case RIGHTS_REQUEST_WRITE:
		return "RIGHTS_REQUEST_WRITE"
	case WEBHOOK_READ:
		return "WEBHOOK_READ"
	case WEBHOOK_WRITE:
		return "WEBHOOK_WRITE"
	case USER_READ:
		return "USER_READ"
	case USER_CREATE:
		return "USER_CREATE"
	case USER_UPDATE:
		return "USER_UPDATE"
	case USER_DELETE:
		return "USER_DELETE"
	case ORGANIZATIONS_LIST:
		return "ORGANIZATIONS_LIST"
	case ORGANIZATIONS_CREATE:
		return "ORGANIZATIONS_CREATE"
	case ORGANIZATIONS_READ:
		return "ORGANIZATIONS_READ"
	case ORGANIZATIONS_UPDATE:
		return "ORGANIZATIONS_UPDATE"
	case APIKEY_READ:
		return "APIKEY_READ"
	case APIKEY_CREATE:
		return "APIKEY_CREATE"
	case APIKEY_DELETE:
		return "APIKEY_DELETE"
	default:
		return "UNKNOWN_PERMISSION"
	}
}

var viewerPermissions = []Permission{
	AUDIT_ENTRIES_READ,
	AUDIT_METRICS_READ,
	CONSENT_READ,
	PURPOSE_READ,
	RETENTION_POLICY_READ,
	RIGHTS_REQUEST_READ,
	WEBHOOK_READ,
	USER_READ,
	ORGANIZATIONS_READ,
}

var auditorPermissions = append(viewerPermissions,
	AUDIT_CHAIN_VERIFY,
	AUDIT_EXPORT,
	AUDIT_EXPORT_SIGNED,
	APIKEY_READ,
)

var adminPermissions = append(auditorPermissions,
	CONSENT_WRITE,
	PURPOSE_WRITE,
	RETENTION_POLICY_WRITE,
	RIGHTS_REQUEST_WRITE,
	WEBHOOK_WRITE,
	USER_CREATE,
	USER_UPDATE,
	USER_DELETE,
	ORGANIZATIONS_UPDATE,
	APIKEY_CREATE,
	APIKEY_DELETE,
)

var superadminPermissions = append(adminPermissions,
	ORGANIZATIONS_LIST,
	ORGANIZATIONS_CREATE,
)

// ROLES_PERMISSIONS encodes the monotonic role hierarchy: each level is a
// superset of the one below it.
var ROLES_PERMISSIONS = map[Role][]Permission{
	VIEWER:     viewerPermissions,
	AUDITOR:    auditorPermissions,
	ADMIN:      adminPermissions,
	SUPERADMIN: superadminPermissions,
}
