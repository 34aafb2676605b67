package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories/dbmodels"
)

type ConsentRepository struct{}

func (repo ConsentRepository) GetConsentById(ctx context.Context, exec Executor,
	consentId string,
) (models.Consent, error) {
	return SqlToModel(
		ctx,
		exec,
		selectConsents().Where(squirrel.Eq{"id": consentId}),
		dbmodels.AdaptConsent,
	)
}

func (repo ConsentRepository) FindConsent(ctx context.Context, exec Executor,
	organizationId, externalUserId, purposeId string,
) (*models.Consent, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		selectConsents().Where(squirrel.Eq{
			"organization_id":  organizationId,
			"external_user_id": externalUserId,
			"purpose_id":       purposeId,
		}),
		dbmodels.AdaptConsent,
	)
}

func (repo ConsentRepository) ListConsents(ctx context.Context, exec Executor,
	filters models.ConsentFilters, pagination models.Pagination,
) ([]models.Consent, error) {
	pagination = pagination.WithDefaults()

	query := selectConsents().
		Where(squirrel.Eq{"organization_id": filters.OrganizationId}).
		OrderBy("last_event_at DESC").
		Limit(uint64(pagination.Limit)).
		Offset(uint64(pagination.Offset))

	if filters.ExternalUserId != "" {
		query = query.Where(squirrel.Eq{"external_user_id": filters.ExternalUserId})
	}
	if filters.PurposeId != "" {
		query = query.Where(squirrel.Eq{"purpose_id": filters.PurposeId})
	}
	if filters.Status != nil {
		query = query.Where(squirrel.Eq{"status": *filters.Status})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptConsent)
}

func (repo ConsentRepository) CreateConsent(ctx context.Context, exec Executor,
	newConsentId string, input models.RecordConsentInput, eventAt time.Time,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CONSENTS).
			Columns(
				"id",
				"organization_id",
				"external_user_id",
				"purpose_id",
				"status",
				"method",
				"last_event_at",
			).
			Values(
				newConsentId,
				input.OrganizationId,
				input.ExternalUserId,
				input.PurposeId,
				input.Status,
				input.Method,
				eventAt,
			),
	)
}

func (repo ConsentRepository) UpdateConsentStatus(ctx context.Context, exec Executor,
	consentId string, status models.ConsentStatus, method models.ConsentMethod, eventAt time.Time,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CONSENTS).
			Set("status", status).
			Set("method", method).
			Set("last_event_at", eventAt).
			Where(squirrel.Eq{"id": consentId}),
	)
}

func selectConsents() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectConsentColumns...).
		From(dbmodels.TABLE_CONSENTS)
}
