package dbmodels

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/pure_utils"
)

type DbPurpose struct {
	Id             string    `db:"id"`
	OrganizationId string    `db:"organization_id"`
	Code           string    `db:"code"`
	Description    *string   `db:"description"`
	Active         bool      `db:"active"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_PURPOSES = "purposes"

var SelectPurposeColumns = []string{
	"id",
	"organization_id",
	"code",
	"description",
	"active",
	"created_at",
}

func AdaptPurpose(db DbPurpose) (models.Purpose, error) {
	return models.Purpose{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		Code:           db.Code,
		Description:    pure_utils.PtrValueOrDefault(db.Description, ""),
		Active:         db.Active,
		CreatedAt:      db.CreatedAt,
	}, nil
}
