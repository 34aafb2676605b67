package models

import "time"

type ConsentStatus string

const (
	ConsentStatusGranted   ConsentStatus = "granted"
	ConsentStatusWithdrawn ConsentStatus = "withdrawn"
)

type ConsentMethod string

const (
	ConsentMethodCheckbox ConsentMethod = "checkbox"
	ConsentMethodTos      ConsentMethod = "tos"
	ConsentMethodContract ConsentMethod = "contract"
	ConsentMethodOther    ConsentMethod = "other"
)

// Consent is the current state of one (organization, external user, purpose)
// triple. State changes are recorded on the audit ledger; the row itself only
// reflects the latest event.
type Consent struct {
	Id             string
	OrganizationId string
	ExternalUserId string
	PurposeId      string
	Status         ConsentStatus
	Method         ConsentMethod
	LastEventAt    time.Time
	CreatedAt      time.Time
}

type RecordConsentInput struct {
	OrganizationId string
	ExternalUserId string
	PurposeId      string
	Status         ConsentStatus
	Method         ConsentMethod
}

type ConsentFilters struct {
	OrganizationId string
	ExternalUserId string
	PurposeId      string
	Status         *ConsentStatus
}
