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

type PurposeUsecase struct {
	enforceSecurity security.EnforceSecurityPurpose
	executorFactory executor_factory.ExecutorFactory
	repository      repositories.PurposeRepository
	writer          ledger.Writer
	credentials     models.Credentials
}

func (uc PurposeUsecase) GetPurpose(ctx context.Context, purposeId string) (models.Purpose, error) {
	purpose, err := uc.repository.GetPurposeById(ctx, uc.executorFactory.NewExecutor(), purposeId)
	if err != nil {
		return models.Purpose{}, err
	}
	if err := uc.enforceSecurity.ReadPurpose(purpose); err != nil {
		return models.Purpose{}, err
	}
	return purpose, nil
}

func (uc PurposeUsecase) ListPurposes(ctx context.Context, organizationId string,
	activeOnly bool,
) ([]models.Purpose, error) {
	if err := uc.enforceSecurity.ListPurposes(organizationId); err != nil {
		return nil, err
	}
	return uc.repository.ListPurposes(ctx, uc.executorFactory.NewExecutor(),
		organizationId, activeOnly)
}

func (uc PurposeUsecase) CreatePurpose(ctx context.Context,
	input models.CreatePurposeInput,
) (models.Purpose, error) {
	if err := uc.enforceSecurity.WritePurpose(input.OrganizationId); err != nil {
		return models.Purpose{}, err
	}
	if input.Code == "" {
		return models.Purpose{}, errors.Wrap(models.BadParameterError, "purpose code is required")
	}

	purposeId := uuid.NewString()
	_, err := uc.writer.AppendWithMutation(ctx, input.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventPurposeCreated,
			ObjectType: "purpose",
			ObjectId:   purposeId,
			StatusCode: 201,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.CreatePurpose(ctx, tx, purposeId, input)
		})
	if repositories.IsUniqueViolationError(err) {
		return models.Purpose{}, errors.Wrapf(models.ConflictError,
			"purpose code %s already exists", input.Code)
	}
	if err != nil {
		return models.Purpose{}, err
	}

	return uc.GetPurpose(ctx, purposeId)
}

func (uc PurposeUsecase) UpdatePurpose(ctx context.Context,
	input models.UpdatePurposeInput,
) (models.Purpose, error) {
	purpose, err := uc.GetPurpose(ctx, input.Id)
	if err != nil {
		return models.Purpose{}, err
	}
	if err := uc.enforceSecurity.WritePurpose(purpose.OrganizationId); err != nil {
		return models.Purpose{}, err
	}

	eventType := models.EventPurposeUpdated
	if input.Active != nil && !*input.Active && purpose.Active {
		eventType = models.EventPurposeDeactivated
	}

	_, err = uc.writer.AppendWithMutation(ctx, purpose.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  eventType,
			ObjectType: "purpose",
			ObjectId:   purpose.Id,
			StatusCode: 200,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.UpdatePurpose(ctx, tx, input)
		})
	if err != nil {
		return models.Purpose{}, err
	}

	return uc.GetPurpose(ctx, purpose.Id)
}
