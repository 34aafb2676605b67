package dbmodels

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type DbConsent struct {
	Id             string    `db:"id"`
	OrganizationId string    `db:"organization_id"`
	ExternalUserId string    `db:"external_user_id"`
	PurposeId      string    `db:"purpose_id"`
	Status         string    `db:"status"`
	Method         string    `db:"method"`
	LastEventAt    time.Time `db:"last_event_at"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_CONSENTS = "consents"

var SelectConsentColumns = []string{
	"id",
	"organization_id",
	"external_user_id",
	"purpose_id",
	"status",
	"method",
	"last_event_at",
	"created_at",
}

func AdaptConsent(db DbConsent) (models.Consent, error) {
	return models.Consent{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		ExternalUserId: db.ExternalUserId,
		PurposeId:      db.PurposeId,
		Status:         models.ConsentStatus(db.Status),
		Method:         models.ConsentMethod(db.Method),
		LastEventAt:    db.LastEventAt,
		CreatedAt:      db.CreatedAt,
	}, nil
}
