package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
	"github.com/consentvault/consentvault-backend/usecases/ledger"
	"github.com/consentvault/consentvault-backend/usecases/security"
)

type OrganizationUsecase struct {
	enforceSecurity security.EnforceSecurityOrganization
	executorFactory executor_factory.ExecutorFactory
	repository      repositories.OrganizationRepository
	writer          ledger.Writer
	credentials     models.Credentials
}

func (uc OrganizationUsecase) GetOrganization(ctx context.Context,
	organizationId string,
) (models.Organization, error) {
	if err := uc.enforceSecurity.ReadOrganizationDetails(organizationId); err != nil {
		return models.Organization{}, err
	}
	return uc.repository.GetOrganizationById(ctx, uc.executorFactory.NewExecutor(), organizationId)
}

func (uc OrganizationUsecase) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	if err := uc.enforceSecurity.ListOrganizations(); err != nil {
		return nil, err
	}
	return uc.repository.AllOrganizations(ctx, uc.executorFactory.NewExecutor())
}

// CreateOrganization provisions the tenant with a fresh export secret; its
// first audit entry anchors the new chain on the organization's genesis hash.
func (uc OrganizationUsecase) CreateOrganization(ctx context.Context,
	input models.CreateOrganizationInput,
) (models.Organization, error) {
	if err := uc.enforceSecurity.CreateOrganization(); err != nil {
		return models.Organization{}, err
	}
	if input.Name == "" {
		return models.Organization{}, errors.Wrap(models.BadParameterError,
			"organization name is required")
	}

	exportSecret, err := generateSecret(32)
	if err != nil {
		return models.Organization{}, err
	}

	organizationId := uuid.NewString()
	_, err = uc.writer.AppendWithMutation(ctx, organizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventOrganizationCreated,
			ObjectType: "organization",
			ObjectId:   organizationId,
			StatusCode: 201,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.CreateOrganization(ctx, tx, organizationId,
				input.Name, exportSecret)
		})
	if err != nil {
		return models.Organization{}, err
	}

	return uc.repository.GetOrganizationById(ctx, uc.executorFactory.NewExecutor(), organizationId)
}

func (uc OrganizationUsecase) UpdateOrganization(ctx context.Context,
	input models.UpdateOrganizationInput,
) (models.Organization, error) {
	if err := uc.enforceSecurity.UpdateOrganization(input.Id); err != nil {
		return models.Organization{}, err
	}
	if input.Status != nil {
		switch *input.Status {
		case models.OrganizationStatusActive, models.OrganizationStatusSuspended:
		default:
			return models.Organization{}, errors.Wrapf(models.BadParameterError,
				"unknown organization status %s", *input.Status)
		}
	}

	organization, err := uc.repository.GetOrganizationById(ctx,
		uc.executorFactory.NewExecutor(), input.Id)
	if err != nil {
		return models.Organization{}, err
	}

	_, err = uc.writer.AppendWithMutation(ctx, organization.Id,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventOrganizationUpdated,
			ObjectType: "organization",
			ObjectId:   organization.Id,
			StatusCode: 200,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.UpdateOrganization(ctx, tx, input)
		})
	if err != nil {
		return models.Organization{}, err
	}

	return uc.repository.GetOrganizationById(ctx, uc.executorFactory.NewExecutor(), input.Id)
}
