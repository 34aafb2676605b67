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

type RetentionPolicyUsecase struct {
	enforceSecurity   security.EnforceSecurityRetentionPolicy
	executorFactory   executor_factory.ExecutorFactory
	repository        repositories.RetentionPolicyRepository
	purposeRepository repositories.PurposeRepository
	writer            ledger.Writer
	credentials       models.Credentials
}

func (uc RetentionPolicyUsecase) GetRetentionPolicy(ctx context.Context,
	policyId string,
) (models.RetentionPolicy, error) {
	policy, err := uc.repository.GetRetentionPolicyById(ctx,
		uc.executorFactory.NewExecutor(), policyId)
	if err != nil {
		return models.RetentionPolicy{}, err
	}
	if err := uc.enforceSecurity.ReadRetentionPolicy(policy); err != nil {
		return models.RetentionPolicy{}, err
	}
	return policy, nil
}

func (uc RetentionPolicyUsecase) ListRetentionPolicies(ctx context.Context,
	organizationId string,
) ([]models.RetentionPolicy, error) {
	if err := uc.enforceSecurity.ListRetentionPolicies(organizationId); err != nil {
		return nil, err
	}
	return uc.repository.ListRetentionPolicies(ctx,
		uc.executorFactory.NewExecutor(), organizationId)
}

func (uc RetentionPolicyUsecase) CreateRetentionPolicy(ctx context.Context,
	input models.CreateRetentionPolicyInput,
) (models.RetentionPolicy, error) {
	if err := uc.enforceSecurity.WriteRetentionPolicy(input.OrganizationId); err != nil {
		return models.RetentionPolicy{}, err
	}
	if input.RetentionDays <= 0 {
		return models.RetentionPolicy{}, errors.Wrap(models.BadParameterError,
			"retention_days must be positive")
	}

	purpose, err := uc.purposeRepository.GetPurposeById(ctx,
		uc.executorFactory.NewExecutor(), input.PurposeId)
	if err != nil {
		return models.RetentionPolicy{}, err
	}
	if purpose.OrganizationId != input.OrganizationId {
		return models.RetentionPolicy{}, errors.Wrapf(models.NotFoundError,
			"purpose %s", input.PurposeId)
	}

	policyId := uuid.NewString()
	_, err = uc.writer.AppendWithMutation(ctx, input.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventRetentionPolicyCreated,
			ObjectType: "retention_policy",
			ObjectId:   policyId,
			StatusCode: 201,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.CreateRetentionPolicy(ctx, tx, policyId, input)
		})
	if err != nil {
		return models.RetentionPolicy{}, err
	}

	return uc.GetRetentionPolicy(ctx, policyId)
}

func (uc RetentionPolicyUsecase) UpdateRetentionPolicy(ctx context.Context,
	input models.UpdateRetentionPolicyInput,
) (models.RetentionPolicy, error) {
	policy, err := uc.GetRetentionPolicy(ctx, input.Id)
	if err != nil {
		return models.RetentionPolicy{}, err
	}
	if err := uc.enforceSecurity.WriteRetentionPolicy(policy.OrganizationId); err != nil {
		return models.RetentionPolicy{}, err
	}
	if input.RetentionDays != nil && *input.RetentionDays <= 0 {
		return models.RetentionPolicy{}, errors.Wrap(models.BadParameterError,
			"retention_days must be positive")
	}

	_, err = uc.writer.AppendWithMutation(ctx, policy.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventRetentionPolicyUpdated,
			ObjectType: "retention_policy",
			ObjectId:   policy.Id,
			StatusCode: 200,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.UpdateRetentionPolicy(ctx, tx, input)
		})
	if err != nil {
		return models.RetentionPolicy{}, err
	}

	return uc.GetRetentionPolicy(ctx, policy.Id)
}
