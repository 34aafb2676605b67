package usecases

import (
	"context"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
	"github.com/consentvault/consentvault-backend/usecases/ledger"
	"github.com/consentvault/consentvault-backend/usecases/security"
)

type WebhookUsecase struct {
	enforceSecurity security.EnforceSecurityWebhook
	executorFactory executor_factory.ExecutorFactory
	repository      repositories.WebhookRepository
	writer          ledger.Writer
	credentials     models.Credentials
}

func (uc WebhookUsecase) GetWebhook(ctx context.Context, webhookId string) (models.Webhook, error) {
	webhook, err := uc.repository.GetWebhookById(ctx, uc.executorFactory.NewExecutor(), webhookId)
	if err != nil {
		return models.Webhook{}, err
	}
	if err := uc.enforceSecurity.ReadWebhook(webhook); err != nil {
		return models.Webhook{}, err
	}
	return webhook, nil
}

func (uc WebhookUsecase) ListWebhooks(ctx context.Context, organizationId string) ([]models.Webhook, error) {
	if err := uc.enforceSecurity.ListWebhooks(organizationId); err != nil {
		return nil, err
	}
	return uc.repository.ListWebhooks(ctx, uc.executorFactory.NewExecutor(), organizationId)
}

func (uc WebhookUsecase) CreateWebhook(ctx context.Context,
	input models.CreateWebhookInput,
) (models.Webhook, error) {
	if err := uc.enforceSecurity.WriteWebhook(input.OrganizationId); err != nil {
		return models.Webhook{}, err
	}
	if err := validateWebhookUrl(input.Url); err != nil {
		return models.Webhook{}, err
	}

	secret, err := generateSecret(32)
	if err != nil {
		return models.Webhook{}, err
	}

	webhookId := uuid.NewString()
	_, err = uc.writer.AppendWithMutation(ctx, input.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventWebhookCreated,
			ObjectType: "webhook",
			ObjectId:   webhookId,
			StatusCode: 201,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.CreateWebhook(ctx, tx, webhookId, input, secret)
		})
	if err != nil {
		return models.Webhook{}, err
	}

	return uc.GetWebhook(ctx, webhookId)
}

func (uc WebhookUsecase) UpdateWebhook(ctx context.Context,
	input models.UpdateWebhookInput,
) (models.Webhook, error) {
	webhook, err := uc.GetWebhook(ctx, input.Id)
	if err != nil {
		return models.Webhook{}, err
	}
	if err := uc.enforceSecurity.WriteWebhook(webhook.OrganizationId); err != nil {
		return models.Webhook{}, err
	}
	if input.Url != nil {
		if err := validateWebhookUrl(*input.Url); err != nil {
			return models.Webhook{}, err
		}
	}

	_, err = uc.writer.AppendWithMutation(ctx, webhook.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventWebhookUpdated,
			ObjectType: "webhook",
			ObjectId:   webhook.Id,
			StatusCode: 200,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.UpdateWebhook(ctx, tx, input)
		})
	if err != nil {
		return models.Webhook{}, err
	}

	return uc.GetWebhook(ctx, webhook.Id)
}

func (uc WebhookUsecase) DeleteWebhook(ctx context.Context, webhookId string) error {
	webhook, err := uc.GetWebhook(ctx, webhookId)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.WriteWebhook(webhook.OrganizationId); err != nil {
		return err
	}

	_, err = uc.writer.AppendWithMutation(ctx, webhook.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventWebhookDeleted,
			ObjectType: "webhook",
			ObjectId:   webhook.Id,
			StatusCode: 204,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.DeleteWebhook(ctx, tx, webhook.Id)
		})
	return err
}

func validateWebhookUrl(rawUrl string) error {
	parsed, err := url.Parse(rawUrl)
	if err != nil || parsed.Host == "" ||
		(parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errors.Wrapf(models.BadParameterError, "invalid webhook url %s", rawUrl)
	}
	return nil
}
