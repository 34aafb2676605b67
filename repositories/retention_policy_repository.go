package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories/dbmodels"
)

type RetentionPolicyRepository struct{}

func (repo RetentionPolicyRepository) GetRetentionPolicyById(ctx context.Context, exec Executor,
	policyId string,
) (models.RetentionPolicy, error) {
	return SqlToModel(
		ctx,
		exec,
		selectRetentionPolicies().Where(squirrel.Eq{"id": policyId}),
		dbmodels.AdaptRetentionPolicy,
	)
}

func (repo RetentionPolicyRepository) ListRetentionPolicies(ctx context.Context, exec Executor,
	organizationId string,
) ([]models.RetentionPolicy, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectRetentionPolicies().
			Where(squirrel.Eq{"organization_id": organizationId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptRetentionPolicy,
	)
}

func (repo RetentionPolicyRepository) CreateRetentionPolicy(ctx context.Context, exec Executor,
	newPolicyId string, input models.CreateRetentionPolicyInput,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_RETENTION_POLICIES).
			Columns("id", "organization_id", "purpose_id", "retention_days").
			Values(newPolicyId, input.OrganizationId, input.PurposeId, input.RetentionDays),
	)
}

func (repo RetentionPolicyRepository) UpdateRetentionPolicy(ctx context.Context, exec Executor,
	input models.UpdateRetentionPolicyInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_RETENTION_POLICIES).
		Where(squirrel.Eq{"id": input.Id})

	if input.RetentionDays != nil {
		query = query.Set("retention_days", *input.RetentionDays)
	}
	if input.Active != nil {
		query = query.Set("active", *input.Active)
	}

	return ExecBuilder(ctx, exec, query)
}

func selectRetentionPolicies() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectRetentionPolicyColumns...).
		From(dbmodels.TABLE_RETENTION_POLICIES)
}
