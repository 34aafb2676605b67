package models

type IntoCredentials interface {
	IntoCredentials() Credentials
}

type Identity struct {
	UserId     string
	Email      string
	ApiKeyId   string
	ApiKeyName string
}

type Credentials struct {
	ActorIdentity  Identity // email or api key, for the audit trail
	OrganizationId string
	Role           Role
}

func (c Credentials) IsSuperadmin() bool {
	return c.Role == SUPERADMIN
}

// ActorRef returns the credential identifier recorded on audit entries, or
// empty for system-generated events.
func (c Credentials) ActorRef() string {
	if c.ActorIdentity.UserId != "" {
		return c.ActorIdentity.UserId
	}
	return c.ActorIdentity.ApiKeyId
}

func (u User) IntoCredentials() Credentials {
	return Credentials{
		ActorIdentity: Identity{
			UserId: u.Id,
			Email:  u.Email,
		},
		OrganizationId: u.OrganizationId,
		Role:           u.Role,
	}
}

func (k ApiKey) IntoCredentials() Credentials {
	return Credentials{
		ActorIdentity: Identity{
			ApiKeyId:   k.Id,
			ApiKeyName: k.Name,
		},
		OrganizationId: k.OrganizationId,
		Role:           k.Role,
	}
}
