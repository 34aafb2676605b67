package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories/dbmodels"
)

type WebhookRepository struct{}

func (repo WebhookRepository) GetWebhookById(ctx context.Context, exec Executor,
	webhookId string,
) (models.Webhook, error) {
	return SqlToModel(
		ctx,
		exec,
		selectWebhooks().Where(squirrel.Eq{"id": webhookId}),
		dbmodels.AdaptWebhook,
	)
}

func (repo WebhookRepository) ListWebhooks(ctx context.Context, exec Executor,
	organizationId string,
) ([]models.Webhook, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectWebhooks().
			Where(squirrel.Eq{"organization_id": organizationId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptWebhook,
	)
}

func (repo WebhookRepository) CreateWebhook(ctx context.Context, exec Executor,
	newWebhookId string, input models.CreateWebhookInput, secret string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_WEBHOOKS).
			Columns("id", "organization_id", "url", "secret", "event_types").
			Values(newWebhookId, input.OrganizationId, input.Url, secret, input.EventTypes),
	)
}

func (repo WebhookRepository) UpdateWebhook(ctx context.Context, exec Executor,
	input models.UpdateWebhookInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_WEBHOOKS).
		Where(squirrel.Eq{"id": input.Id})

	if input.Url != nil {
		query = query.Set("url", *input.Url)
	}
	if input.EventTypes != nil {
		query = query.Set("event_types", input.EventTypes)
	}
	if input.Active != nil {
		query = query.Set("active", *input.Active)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo WebhookRepository) DeleteWebhook(ctx context.Context, exec Executor,
	webhookId string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_WEBHOOKS).
			Where(squirrel.Eq{"id": webhookId}),
	)
}

func selectWebhooks() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectWebhookColumns...).
		From(dbmodels.TABLE_WEBHOOKS)
}
