package models

import (
	"time"
)

// AuditEntry is one link of an organization's tamper-evident chain. Entries
// are created exclusively by the ledger writer and are never updated or
// deleted afterwards; correcting a record is itself a new entry.
type AuditEntry struct {
	Id             string
	OrganizationId string

	// ActorRef identifies the acting credential (user id or api key id).
	// Empty for system-generated events.
	ActorRef string

	EventType  string
	ObjectType string
	ObjectId   string

	// RequestFingerprint is an opaque hash of the originating request, used
	// to correlate duplicate submissions. Optional.
	RequestFingerprint string

	// StatusCode is the HTTP status of the request that produced this entry,
	// recorded for the dashboard's status breakdowns. Zero when the entry was
	// not produced by an HTTP request.
	StatusCode int

	PrevHash  string
	EntryHash string
	CreatedAt time.Time
}

// AuditEntryFields is the caller-supplied part of an entry. Id, timestamps
// and hashes are assigned by the writer at append time.
type AuditEntryFields struct {
	ActorRef           string
	EventType          string
	ObjectType         string
	ObjectId           string
	RequestFingerprint string
	StatusCode         int
}

// ChainHead is the versioned head pointer of one organization's chain. Seq
// increases by one per append and backs the compare-and-swap append.
type ChainHead struct {
	OrganizationId string
	EntryHash      string
	Seq            int64
}

type AuditEntryFilters struct {
	OrganizationId string
	EventType      string
	ObjectType     string
	Since          *time.Time
	Until          *time.Time
}

// VerificationReport is the outcome of walking a chain window and recomputing
// every hash. A rate below 1 is a correctness signal; CheckedCount == 0 means
// "no data", which must not be conflated with a broken chain.
type VerificationReport struct {
	OrganizationId string

	CheckedCount int
	OkCount      int

	// FirstBreakIndex is the 1-based position of the first entry whose
	// recomputed hash does not match the stored one, nil if the window is
	// unbroken. Entries past a break are not verifiable without out-of-band
	// trust and are not counted.
	FirstBreakIndex *int
	FirstBreakId    string

	// Truncated is set when the scan hit its row budget before reaching the
	// end of the requested window.
	Truncated bool
}

func (r VerificationReport) Rate() float64 {
	if r.CheckedCount == 0 {
		return 0
	}
	return float64(r.OkCount) / float64(r.CheckedCount)
}

type LedgerMetrics struct {
	TotalEvents        int
	EventsLast24h      int
	StatusBreakdown24h StatusBreakdown
	Verification       VerificationReport
	UnsignedExports7d  int
	TopEndpoints       []EndpointCount
	TopObjectTypes     []ObjectTypeCount
}

type StatusBreakdown struct {
	Status2xx int
	Status4xx int
	Status5xx int
}

type EndpointCount struct {
	EventType string
	Count     int
}

type ObjectTypeCount struct {
	ObjectType string
	Count      int
}

type TimeseriesBucket struct {
	BucketStart time.Time
	EventCount  int
	StatusBreakdown
}

type TimeseriesWindow string

const (
	TimeseriesWindow24h TimeseriesWindow = "24h"
	TimeseriesWindow7d  TimeseriesWindow = "7d"
	TimeseriesWindow30d TimeseriesWindow = "30d"
)

func (w TimeseriesWindow) Duration() (time.Duration, error) {
	switch w {
	case TimeseriesWindow24h:
		return 24 * time.Hour, nil
	case TimeseriesWindow7d:
		return 7 * 24 * time.Hour, nil
	case TimeseriesWindow30d:
		return 30 * 24 * time.Hour, nil
	}
	return 0, BadParameterError
}

type TimeseriesBucketSize string

const (
	TimeseriesBucketHour TimeseriesBucketSize = "hour"
	TimeseriesBucketDay  TimeseriesBucketSize = "day"
)

func (b TimeseriesBucketSize) Validate() error {
	switch b {
	case TimeseriesBucketHour, TimeseriesBucketDay:
		return nil
	}
	return BadParameterError
}

// Audit event types. The dot-separated convention is object.action.
const (
	EventConsentGranted   = "consent.granted"
	EventConsentWithdrawn = "consent.withdrawn"

	EventPurposeCreated     = "purpose.created"
	EventPurposeUpdated     = "purpose.updated"
	EventPurposeDeactivated = "purpose.deactivated"

	EventRetentionPolicyCreated = "retention_policy.created"
	EventRetentionPolicyUpdated = "retention_policy.updated"

	EventRightsRequestOpened = "rights_request.opened"
	EventRightsRequestMoved  = "rights_request.status_changed"

	EventWebhookCreated = "webhook.created"
	EventWebhookUpdated = "webhook.updated"
	EventWebhookDeleted = "webhook.deleted"

	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"

	EventOrganizationCreated = "organization.created"
	EventOrganizationUpdated = "organization.updated"

	EventApiKeyCreated = "api_key.created"
	EventApiKeyRevoked = "api_key.revoked"

	EventAuditExported       = "audit.exported"
	EventAuditExportedSigned = "audit.exported_signed"
)
