package models

import "time"

type ApiKey struct {
	Id             string
	OrganizationId string
	Name           string
	Hash           []byte
	Prefix         string
	Role           Role
	CreatedAt      time.Time
}

type CreateApiKeyInput struct {
	OrganizationId string
	Name           string
	Role           Role
}

// CreatedApiKey carries the clear-text key, returned exactly once at
// creation time.
type CreatedApiKey struct {
	ApiKey
	Key string
}
