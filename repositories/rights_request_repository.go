package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories/dbmodels"
)

type RightsRequestRepository struct{}

func (repo RightsRequestRepository) GetRightsRequestById(ctx context.Context, exec Executor,
	requestId string,
) (models.RightsRequest, error) {
	return SqlToModel(
		ctx,
		exec,
		selectRightsRequests().Where(squirrel.Eq{"id": requestId}),
		dbmodels.AdaptRightsRequest,
	)
}

func (repo RightsRequestRepository) ListRightsRequests(ctx context.Context, exec Executor,
	organizationId string, status *models.RightsRequestStatus, pagination models.Pagination,
) ([]models.RightsRequest, error) {
	pagination = pagination.WithDefaults()

	query := selectRightsRequests().
		Where(squirrel.Eq{"organization_id": organizationId}).
		OrderBy("opened_at DESC").
		Limit(uint64(pagination.Limit)).
		Offset(uint64(pagination.Offset))

	if status != nil {
		query = query.Where(squirrel.Eq{"status": *status})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptRightsRequest)
}

func (repo RightsRequestRepository) CreateRightsRequest(ctx context.Context, exec Executor,
	newRequestId string, input models.CreateRightsRequestInput,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_RIGHTS_REQUESTS).
			Columns("id", "organization_id", "external_user_id", `"right"`, "status").
			Values(newRequestId, input.OrganizationId, input.ExternalUserId,
				input.Right, models.RightsRequestOpen),
	)
}

func (repo RightsRequestRepository) UpdateRightsRequestStatus(ctx context.Context, exec Executor,
	input models.UpdateRightsRequestInput, closed bool,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_RIGHTS_REQUESTS).
		Set("status", input.Status).
		Where(squirrel.Eq{"id": input.Id})

	if input.Reason != "" {
		query = query.Set("reason", input.Reason)
	}
	if closed {
		query = query.Set("closed_at", squirrel.Expr("now()"))
	}

	return ExecBuilder(ctx, exec, query)
}

func selectRightsRequests() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectRightsRequestColumns...).
		From(dbmodels.TABLE_RIGHTS_REQUESTS)
}
