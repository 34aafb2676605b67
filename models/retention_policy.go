package models

import "time"

// RetentionPolicy sets how long data collected under a purpose may be kept.
// Execution of the policy is out of scope; the record and its audit trail are
// not.
type RetentionPolicy struct {
	Id             string
	OrganizationId string
	PurposeId      string
	RetentionDays  int
	Active         bool
	CreatedAt      time.Time
}

type CreateRetentionPolicyInput struct {
	OrganizationId string
	PurposeId      string
	RetentionDays  int
}

type UpdateRetentionPolicyInput struct {
	Id            string
	RetentionDays *int
	Active        *bool
}
