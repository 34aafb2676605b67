package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
	"github.com/consentvault/consentvault-backend/usecases/ledger"
	"github.com/consentvault/consentvault-backend/usecases/security"
)

type ConsentUsecase struct {
	enforceSecurity   security.EnforceSecurityConsent
	executorFactory   executor_factory.ExecutorFactory
	repository        repositories.ConsentRepository
	purposeRepository repositories.PurposeRepository
	writer            ledger.Writer
	credentials       models.Credentials
}

func (uc ConsentUsecase) GetConsent(ctx context.Context, consentId string) (models.Consent, error) {
	consent, err := uc.repository.GetConsentById(ctx, uc.executorFactory.NewExecutor(), consentId)
	if err != nil {
		return models.Consent{}, err
	}
	if err := uc.enforceSecurity.ReadConsent(consent); err != nil {
		return models.Consent{}, err
	}
	return consent, nil
}

func (uc ConsentUsecase) ListConsents(ctx context.Context,
	filters models.ConsentFilters, pagination models.Pagination,
) ([]models.Consent, error) {
	if err := uc.enforceSecurity.ListConsents(filters.OrganizationId); err != nil {
		return nil, err
	}
	return uc.repository.ListConsents(ctx, uc.executorFactory.NewExecutor(), filters, pagination)
}

// RecordConsent upserts the current state of the (user, purpose) pair and
// appends the matching event to the audit ledger, atomically.
func (uc ConsentUsecase) RecordConsent(ctx context.Context,
	input models.RecordConsentInput,
) (models.Consent, error) {
	if err := uc.enforceSecurity.RecordConsent(input.OrganizationId); err != nil {
		return models.Consent{}, err
	}
	if err := validateConsentInput(input); err != nil {
		return models.Consent{}, err
	}

	exec := uc.executorFactory.NewExecutor()
	purpose, err := uc.purposeRepository.GetPurposeById(ctx, exec, input.PurposeId)
	if err != nil {
		return models.Consent{}, err
	}
	if purpose.OrganizationId != input.OrganizationId {
		return models.Consent{}, errors.Wrapf(models.NotFoundError, "purpose %s", input.PurposeId)
	}
	if !purpose.Active {
		return models.Consent{}, errors.Wrapf(models.BadParameterError,
			"purpose %s is inactive", purpose.Code)
	}

	eventType := models.EventConsentGranted
	if input.Status == models.ConsentStatusWithdrawn {
		eventType = models.EventConsentWithdrawn
	}

	existing, err := uc.repository.FindConsent(ctx, exec,
		input.OrganizationId, input.ExternalUserId, input.PurposeId)
	if err != nil {
		return models.Consent{}, err
	}

	consentId := uuid.NewString()
	if existing != nil {
		consentId = existing.Id
	}

	entry, err := uc.writer.AppendWithMutation(ctx, input.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  eventType,
			ObjectType: "consent",
			ObjectId:   consentId,
			StatusCode: 201,
		},
		func(tx repositories.Transaction) error {
			now := time.Now().UTC()
			if existing != nil {
				return uc.repository.UpdateConsentStatus(ctx, tx, consentId,
					input.Status, input.Method, now)
			}
			return uc.repository.CreateConsent(ctx, tx, consentId, input, now)
		})
	if err != nil {
		return models.Consent{}, err
	}

	return models.Consent{
		Id:             consentId,
		OrganizationId: input.OrganizationId,
		ExternalUserId: input.ExternalUserId,
		PurposeId:      input.PurposeId,
		Status:         input.Status,
		Method:         input.Method,
		LastEventAt:    entry.CreatedAt,
	}, nil
}

func validateConsentInput(input models.RecordConsentInput) error {
	switch input.Status {
	case models.ConsentStatusGranted, models.ConsentStatusWithdrawn:
	default:
		return errors.Wrapf(models.BadParameterError, "unknown consent status %s", input.Status)
	}
	switch input.Method {
	case models.ConsentMethodCheckbox, models.ConsentMethodTos,
		models.ConsentMethodContract, models.ConsentMethodOther:
	default:
		return errors.Wrapf(models.BadParameterError, "unknown consent method %s", input.Method)
	}
	if input.ExternalUserId == "" {
		return errors.Wrap(models.BadParameterError, "external_user_id is required")
	}
	return nil
}
