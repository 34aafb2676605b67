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

type RightsRequestUsecase struct {
	enforceSecurity security.EnforceSecurityRightsRequest
	executorFactory executor_factory.ExecutorFactory
	repository      repositories.RightsRequestRepository
	writer          ledger.Writer
	credentials     models.Credentials
}

func (uc RightsRequestUsecase) GetRightsRequest(ctx context.Context,
	requestId string,
) (models.RightsRequest, error) {
	request, err := uc.repository.GetRightsRequestById(ctx,
		uc.executorFactory.NewExecutor(), requestId)
	if err != nil {
		return models.RightsRequest{}, err
	}
	if err := uc.enforceSecurity.ReadRightsRequest(request); err != nil {
		return models.RightsRequest{}, err
	}
	return request, nil
}

func (uc RightsRequestUsecase) ListRightsRequests(ctx context.Context,
	organizationId string, status *models.RightsRequestStatus, pagination models.Pagination,
) ([]models.RightsRequest, error) {
	if err := uc.enforceSecurity.ListRightsRequests(organizationId); err != nil {
		return nil, err
	}
	return uc.repository.ListRightsRequests(ctx, uc.executorFactory.NewExecutor(),
		organizationId, status, pagination)
}

func (uc RightsRequestUsecase) CreateRightsRequest(ctx context.Context,
	input models.CreateRightsRequestInput,
) (models.RightsRequest, error) {
	if err := uc.enforceSecurity.WriteRightsRequest(input.OrganizationId); err != nil {
		return models.RightsRequest{}, err
	}
	switch input.Right {
	case models.DataRightAccess, models.DataRightErasure, models.DataRightPortability:
	default:
		return models.RightsRequest{}, errors.Wrapf(models.BadParameterError,
			"unknown data right %s", input.Right)
	}
	if input.ExternalUserId == "" {
		return models.RightsRequest{}, errors.Wrap(models.BadParameterError,
			"external_user_id is required")
	}

	requestId := uuid.NewString()
	_, err := uc.writer.AppendWithMutation(ctx, input.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventRightsRequestOpened,
			ObjectType: "rights_request",
			ObjectId:   requestId,
			StatusCode: 201,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.CreateRightsRequest(ctx, tx, requestId, input)
		})
	if err != nil {
		return models.RightsRequest{}, err
	}

	return uc.GetRightsRequest(ctx, requestId)
}

func (uc RightsRequestUsecase) UpdateRightsRequestStatus(ctx context.Context,
	input models.UpdateRightsRequestInput,
) (models.RightsRequest, error) {
	request, err := uc.GetRightsRequest(ctx, input.Id)
	if err != nil {
		return models.RightsRequest{}, err
	}
	if err := uc.enforceSecurity.WriteRightsRequest(request.OrganizationId); err != nil {
		return models.RightsRequest{}, err
	}

	if !request.Status.CanTransitionTo(input.Status) {
		return models.RightsRequest{}, errors.Wrapf(models.BadParameterError,
			"cannot move rights request from %s to %s", request.Status, input.Status)
	}
	closed := input.Status == models.RightsRequestCompleted ||
		input.Status == models.RightsRequestRejected

	_, err = uc.writer.AppendWithMutation(ctx, request.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventRightsRequestMoved,
			ObjectType: "rights_request",
			ObjectId:   request.Id,
			StatusCode: 200,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.UpdateRightsRequestStatus(ctx, tx, input, closed)
		})
	if err != nil {
		return models.RightsRequest{}, err
	}

	return uc.GetRightsRequest(ctx, request.Id)
}
