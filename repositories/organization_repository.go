package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories/dbmodels"
)

type OrganizationRepository struct{}

func (repo OrganizationRepository) GetOrganizationById(ctx context.Context, exec Executor,
	organizationId string,
) (models.Organization, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectOrganizationColumns...).
			From(dbmodels.TABLE_ORGANIZATIONS).
			Where(squirrel.Eq{"id": organizationId}),
		dbmodels.AdaptOrganization,
	)
}

func (repo OrganizationRepository) AllOrganizations(ctx context.Context, exec Executor) ([]models.Organization, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectOrganizationColumns...).
			From(dbmodels.TABLE_ORGANIZATIONS).
			OrderBy("name ASC"),
		dbmodels.AdaptOrganization,
	)
}

func (repo OrganizationRepository) CreateOrganization(ctx context.Context, exec Executor,
	newOrganizationId, name, exportSecret string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_ORGANIZATIONS).
			Columns("id", "name", "status", "export_secret").
			Values(newOrganizationId, name, models.OrganizationStatusActive, exportSecret),
	)
}

func (repo OrganizationRepository) UpdateOrganization(ctx context.Context, exec Executor,
	input models.UpdateOrganizationInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_ORGANIZATIONS).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.Status != nil {
		query = query.Set("status", *input.Status)
	}

	return ExecBuilder(ctx, exec, query)
}
