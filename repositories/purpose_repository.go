package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories/dbmodels"
)

type PurposeRepository struct{}

func (repo PurposeRepository) GetPurposeById(ctx context.Context, exec Executor,
	purposeId string,
) (models.Purpose, error) {
	return SqlToModel(
		ctx,
		exec,
		selectPurposes().Where(squirrel.Eq{"id": purposeId}),
		dbmodels.AdaptPurpose,
	)
}

func (repo PurposeRepository) ListPurposes(ctx context.Context, exec Executor,
	organizationId string, activeOnly bool,
) ([]models.Purpose, error) {
	query := selectPurposes().
		Where(squirrel.Eq{"organization_id": organizationId}).
		OrderBy("code ASC")
	if activeOnly {
		query = query.Where(squirrel.Eq{"active": true})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptPurpose)
}

func (repo PurposeRepository) CreatePurpose(ctx context.Context, exec Executor,
	newPurposeId string, input models.CreatePurposeInput,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_PURPOSES).
			Columns("id", "organization_id", "code", "description").
			Values(newPurposeId, input.OrganizationId, input.Code, input.Description),
	)
}

func (repo PurposeRepository) UpdatePurpose(ctx context.Context, exec Executor,
	input models.UpdatePurposeInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_PURPOSES).
		Where(squirrel.Eq{"id": input.Id})

	if input.Description != nil {
		query = query.Set("description", *input.Description)
	}
	if input.Active != nil {
		query = query.Set("active", *input.Active)
	}

	return ExecBuilder(ctx, exec, query)
}

func selectPurposes() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectPurposeColumns...).
		From(dbmodels.TABLE_PURPOSES)
}
