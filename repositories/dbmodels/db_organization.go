package dbmodels

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type DbOrganization struct {
	Id           string    `db:"id"`
	Name         string    `db:"name"`
	Status       string    `db:"status"`
	ExportSecret string    `db:"export_secret"`
	CreatedAt    time.Time `db:"created_at"`
}

const TABLE_ORGANIZATIONS = "organizations"

var SelectOrganizationColumns = []string{
	"id",
	"name",
	"status",
	"export_secret",
	"created_at",
}

func AdaptOrganization(db DbOrganization) (models.Organization, error) {
	return models.Organization{
		Id:           db.Id,
		Name:         db.Name,
		Status:       models.OrganizationStatus(db.Status),
		ExportSecret: db.ExportSecret,
		CreatedAt:    db.CreatedAt,
	}, nil
}
