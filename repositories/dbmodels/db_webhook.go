package dbmodels

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

type DbWebhook struct {
	Id             string    `db:"id"`
	OrganizationId string    `db:"organization_id"`
	Url            string    `db:"url"`
	Secret         string    `db:"secret"`
	EventTypes     []string  `db:"event_types"`
	Active         bool      `db:"active"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_WEBHOOKS = "webhooks"

var SelectWebhookColumns = []string{
	"id",
	"organization_id",
	"url",
	"secret",
	"event_types",
	"active",
	"created_at",
}

func AdaptWebhook(db DbWebhook) (models.Webhook, error) {
	return models.Webhook{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		Url:            db.Url,
		Secret:         db.Secret,
		EventTypes:     db.EventTypes,
		Active:         db.Active,
		CreatedAt:      db.CreatedAt,
	}, nil
}
