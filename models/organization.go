package models

import "time"

type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "active"
	OrganizationStatusSuspended OrganizationStatus = "suspended"
)

type Organization struct {
	Id     string
	Name   string
	Status OrganizationStatus

	// ExportSecret is the per-organization key for signing export bundles.
	// Established at organization creation, never transmitted in exports.
	ExportSecret string

	CreatedAt time.Time
}

type CreateOrganizationInput struct {
	Name string
}

type UpdateOrganizationInput struct {
	Id     string
	Name   *string
	Status *OrganizationStatus
}
