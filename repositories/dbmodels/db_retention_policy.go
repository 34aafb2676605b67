package dbmodels

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type DbRetentionPolicy struct {
	Id             string    `db:"id"`
	OrganizationId string    `db:"organization_id"`
	PurposeId      string    `db:"purpose_id"`
	RetentionDays  int       `db:"retention_days"`
	Active         bool      `db:"active"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_RETENTION_POLICIES = "retention_policies"

var SelectRetentionPolicyColumns = []string{
	"id",
	"organization_id",
	"purpose_id",
	"retention_days",
	"active",
	"created_at",
}

func AdaptRetentionPolicy(db DbRetentionPolicy) (models.RetentionPolicy, error) {
	return models.RetentionPolicy{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		PurposeId:      db.PurposeId,
		RetentionDays:  db.RetentionDays,
		Active:         db.Active,
		CreatedAt:      db.CreatedAt,
	}, nil
}
