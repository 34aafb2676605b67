package models

import "time"

type User struct {
	Id             string
	OrganizationId string
	Email          string
	Role           Role
	CreatedAt      time.Time
}

type CreateUser struct {
	OrganizationId string
	Email          string
	Role           Role
}

type UpdateUser struct {
	Id   string
	Role *Role
}
