package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories/dbmodels"
)

type ApiKeyRepository struct{}

func (repo ApiKeyRepository) GetApiKeyByHash(ctx context.Context, exec Executor,
	hash []byte,
) (models.ApiKey, error) {
	return SqlToModel(
		ctx,
		exec,
		selectApiKeys().Where(squirrel.Eq{"hash": hash}),
		dbmodels.AdaptApiKey,
	)
}

func (repo ApiKeyRepository) GetApiKeyById(ctx context.Context, exec Executor,
	apiKeyId string,
) (models.ApiKey, error) {
	return SqlToModel(
		ctx,
		exec,
		selectApiKeys().Where(squirrel.Eq{"id": apiKeyId}),
		dbmodels.AdaptApiKey,
	)
}

func (repo ApiKeyRepository) ListApiKeys(ctx context.Context, exec Executor,
	organizationId string,
) ([]models.ApiKey, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectApiKeys().
			Where(squirrel.Eq{"organization_id": organizationId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptApiKey,
	)
}

func (repo ApiKeyRepository) CreateApiKey(ctx context.Context, exec Executor,
	apiKey models.ApiKey,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_API_KEYS).
			Columns("id", "organization_id", "name", "hash", "prefix", "role").
			Values(
				apiKey.Id,
				apiKey.OrganizationId,
				apiKey.Name,
				apiKey.Hash,
				apiKey.Prefix,
				apiKey.Role.String(),
			),
	)
}

func (repo ApiKeyRepository) SoftDeleteApiKey(ctx context.Context, exec Executor,
	apiKeyId string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_API_KEYS).
			Set("deleted_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": apiKeyId}),
	)
}

func selectApiKeys() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectApiKeyColumns...).
		From(dbmodels.TABLE_API_KEYS).
		Where(squirrel.Eq{"deleted_at": nil})
}
