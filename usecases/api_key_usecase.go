package usecases

import (
	"context"
	"crypto/sha256"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
	"github.com/consentvault/consentvault-backend/usecases/ledger"
	"github.com/consentvault/consentvault-backend/usecases/security"
)

type ApiKeyUsecase struct {
	enforceSecurity security.EnforceSecurityApiKey
	executorFactory executor_factory.ExecutorFactory
	repository      repositories.ApiKeyRepository
	writer          ledger.Writer
	credentials     models.Credentials
}

func (uc ApiKeyUsecase) ListApiKeys(ctx context.Context, organizationId string) ([]models.ApiKey, error) {
	if err := uc.enforceSecurity.ListApiKeys(organizationId); err != nil {
		return nil, err
	}
	return uc.repository.ListApiKeys(ctx, uc.executorFactory.NewExecutor(), organizationId)
}

// CreateApiKey returns the clear key exactly once; only its sha256 is stored.
func (uc ApiKeyUsecase) CreateApiKey(ctx context.Context,
	input models.CreateApiKeyInput,
) (models.CreatedApiKey, error) {
	if err := uc.enforceSecurity.CreateApiKey(input); err != nil {
		return models.CreatedApiKey{}, err
	}
	if input.Role == models.NO_ROLE || input.Role == models.SUPERADMIN {
		return models.CreatedApiKey{}, errors.Wrapf(models.BadParameterError,
			"api keys cannot carry the role %s", input.Role)
	}

	key, err := generateSecret(32)
	if err != nil {
		return models.CreatedApiKey{}, err
	}
	hash := sha256.Sum256([]byte(key))

	apiKey := models.ApiKey{
		Id:             uuid.NewString(),
		OrganizationId: input.OrganizationId,
		Name:           input.Name,
		Hash:           hash[:],
		Prefix:         key[:3],
		Role:           input.Role,
	}

	_, err = uc.writer.AppendWithMutation(ctx, input.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventApiKeyCreated,
			ObjectType: "api_key",
			ObjectId:   apiKey.Id,
			StatusCode: 201,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.CreateApiKey(ctx, tx, apiKey)
		})
	if err != nil {
		return models.CreatedApiKey{}, err
	}

	return models.CreatedApiKey{
		ApiKey: apiKey,
		Key:    key,
	}, nil
}

func (uc ApiKeyUsecase) DeleteApiKey(ctx context.Context, apiKeyId string) error {
	apiKey, err := uc.repository.GetApiKeyById(ctx, uc.executorFactory.NewExecutor(), apiKeyId)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.DeleteApiKey(apiKey); err != nil {
		return err
	}

	_, err = uc.writer.AppendWithMutation(ctx, apiKey.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventApiKeyRevoked,
			ObjectType: "api_key",
			ObjectId:   apiKey.Id,
			StatusCode: 204,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.SoftDeleteApiKey(ctx, tx, apiKey.Id)
		})
	return err
}
