package dbmodels

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/pure_utils"
)

type DbRightsRequest struct {
	Id             string     `db:"id"`
	OrganizationId string     `db:"organization_id"`
	ExternalUserId string     `db:"external_user_id"`
	Right          string     `db:"right"`
	Status         string     `db:"status"`
	Reason         *string    `db:"reason"`
	OpenedAt       time.Time  `db:"opened_at"`
	ClosedAt       *time.Time `db:"closed_at"`
}

const TABLE_RIGHTS_REQUESTS = "rights_requests"

var SelectRightsRequestColumns = []string{
	"id",
	"organization_id",
	"external_user_id",
	"\"right\"",
	"status",
	"reason",
	"opened_at",
	"closed_at",
}

func AdaptRightsRequest(db DbRightsRequest) (models.RightsRequest, error) {
	return models.RightsRequest{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		ExternalUserId: db.ExternalUserId,
		Right:          models.DataRight(db.Right),
		Status:         models.RightsRequestStatus(db.Status),
		Reason:         pure_utils.PtrValueOrDefault(db.Reason, ""),
		OpenedAt:       db.OpenedAt,
		ClosedAt:       db.ClosedAt,
	}, nil
}
