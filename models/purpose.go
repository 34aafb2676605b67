package models

import "time"

// Purpose is a processing purpose consents are given for, unique by
// (organization, code).
type Purpose struct {
	Id             string
	OrganizationId string
	Code           string
	Description    string
	Active         bool
	CreatedAt      time.Time
}

type CreatePurposeInput struct {
	OrganizationId string
	Code           string
	Description    string
}

type UpdatePurposeInput struct {
	Id          string
	Description *string
	Active      *bool
}
