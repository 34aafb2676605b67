package dbmodels

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type DbApiKey struct {
	Id             string     `db:"id"`
	OrganizationId string     `db:"organization_id"`
	Name           string     `db:"name"`
	Hash           []byte     `db:"hash"`
	Prefix         string     `db:"prefix"`
	Role           string     `db:"role"`
	CreatedAt      time.Time  `db:"created_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

const TABLE_API_KEYS = "api_keys"

var SelectApiKeyColumns = []string{
	"id",
	"organization_id",
	"name",
	"hash",
	"prefix",
	"role",
	"created_at",
	"deleted_at",
}

func AdaptApiKey(db DbApiKey) (models.ApiKey, error) {
	return models.ApiKey{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		Name:           db.Name,
		Hash:           db.Hash,
		Prefix:         db.Prefix,
		Role:           models.RoleFromString(db.Role),
		CreatedAt:      db.CreatedAt,
	}, nil
}
