package dbmodels

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type DbUser struct {
	Id             string    `db:"id"`
	OrganizationId string    `db:"organization_id"`
	Email          string    `db:"email"`
	Role           string    `db:"role"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_USERS = "users"

var SelectUserColumns = []string{
	"id",
	"organization_id",
	"email",
	"role",
	"created_at",
}

func AdaptUser(db DbUser) (models.User, error) {
	return models.User{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		Email:          db.Email,
		Role:           models.RoleFromString(db.Role),
		CreatedAt:      db.CreatedAt,
	}, nil
}
