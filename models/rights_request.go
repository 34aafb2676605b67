package models

import "time"

type DataRight string

const (
	DataRightAccess      DataRight = "access"
	DataRightErasure     DataRight = "erasure"
	DataRightPortability DataRight = "portability"
)

type RightsRequestStatus string

const (
	RightsRequestOpen       RightsRequestStatus = "open"
	RightsRequestInProgress RightsRequestStatus = "in_progress"
	RightsRequestCompleted  RightsRequestStatus = "completed"
	RightsRequestRejected   RightsRequestStatus = "rejected"
)

// RightsRequest is a data-subject request (access, erasure, portability).
// Closing one is a status change plus a new ledger entry, never a mutation of
// history.
type RightsRequest struct {
	Id             string
	OrganizationId string
	ExternalUserId string
	Right          DataRight
	Status         RightsRequestStatus
	Reason         string
	OpenedAt       time.Time
	ClosedAt       *time.Time
}

type CreateRightsRequestInput struct {
	OrganizationId string
	ExternalUserId string
	Right          DataRight
}

type UpdateRightsRequestInput struct {
	Id     string
	Status RightsRequestStatus
	Reason string
}

var rightsRequestTransitions = map[RightsRequestStatus][]RightsRequestStatus{
	RightsRequestOpen:       {RightsRequestInProgress, RightsRequestCompleted, RightsRequestRejected},
	RightsRequestInProgress: {RightsRequestCompleted, RightsRequestRejected},
}

func (s RightsRequestStatus) CanTransitionTo(target RightsRequestStatus) bool {
	for _, allowed := range rightsRequestTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
