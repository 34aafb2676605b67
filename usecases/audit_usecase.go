package usecases

import (
	"context"
	"time"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
	"github.com/consentvault/consentvault-backend/usecases/ledger"
	"github.com/consentvault/consentvault-backend/usecases/security"
)

type AuditUsecase struct {
	enforceSecurity security.EnforceSecurityLedger
	executorFactory executor_factory.ExecutorFactory
	repository      repositories.LedgerRepository
	verifier        ledger.Verifier
	metricsReader   ledger.MetricsReader
}

func (uc AuditUsecase) ListAuditEntries(ctx context.Context,
	filters models.AuditEntryFilters, pagination models.Pagination,
) ([]models.AuditEntry, error) {
	if err := uc.enforceSecurity.ReadAuditEntries(filters.OrganizationId); err != nil {
		return nil, err
	}
	return uc.repository.ListAuditEntries(ctx, uc.executorFactory.NewExecutor(),
		filters, pagination, false)
}

func (uc AuditUsecase) GetAuditEntry(ctx context.Context, entryId string) (models.AuditEntry, error) {
	entry, err := uc.repository.GetAuditEntry(ctx, uc.executorFactory.NewExecutor(), entryId)
	if err != nil {
		return models.AuditEntry{}, err
	}
	if err := uc.enforceSecurity.ReadAuditEntries(entry.OrganizationId); err != nil {
		return models.AuditEntry{}, err
	}
	return entry, nil
}

func (uc AuditUsecase) VerifyChain(ctx context.Context, organizationId string) (models.VerificationReport, error) {
	if err := uc.enforceSecurity.VerifyChain(organizationId); err != nil {
		return models.VerificationReport{}, err
	}
	return uc.verifier.VerifyChain(ctx, organizationId)
}

// VerifyEntryHash checks whether a hash is a member of the organization's
// chain, and that the stored entry still recomputes to it.
func (uc AuditUsecase) VerifyEntryHash(ctx context.Context,
	organizationId, entryHash string,
) (*models.AuditEntry, bool, error) {
	if err := uc.enforceSecurity.VerifyChain(organizationId); err != nil {
		return nil, false, err
	}

	entry, err := uc.repository.FindEntryByHash(ctx, uc.executorFactory.NewExecutor(),
		organizationId, entryHash)
	if err != nil || entry == nil {
		return nil, false, err
	}

	recomputed, err := ledger.ComputeEntryHash(entry.PrevHash, *entry)
	if err != nil {
		return nil, false, err
	}
	return entry, recomputed == entry.EntryHash, nil
}

// ComputePayloadHash returns the hash an entry with the given content would
// carry when chained after prevHash. It reads nothing from the ledger, so
// auditors can recompute hashes for evidence held outside the database.
func (uc AuditUsecase) ComputePayloadHash(ctx context.Context, organizationId string,
	fields models.AuditEntryFields, prevHash string, createdAt time.Time,
) (string, error) {
	if err := uc.enforceSecurity.VerifyChain(organizationId); err != nil {
		return "", err
	}

	entry := models.AuditEntry{
		OrganizationId:     organizationId,
		ActorRef:           fields.ActorRef,
		EventType:          fields.EventType,
		ObjectType:         fields.ObjectType,
		ObjectId:           fields.ObjectId,
		RequestFingerprint: fields.RequestFingerprint,
		CreatedAt:          createdAt,
	}
	return ledger.ComputeEntryHash(prevHash, entry)
}

func (uc AuditUsecase) DashboardMetrics(ctx context.Context, organizationId string) (models.LedgerMetrics, error) {
	if err := uc.enforceSecurity.ReadMetrics(organizationId); err != nil {
		return models.LedgerMetrics{}, err
	}
	return uc.metricsReader.DashboardMetrics(ctx, organizationId)
}

func (uc AuditUsecase) EventTimeseries(ctx context.Context, organizationId string,
	window models.TimeseriesWindow, bucket models.TimeseriesBucketSize,
) ([]models.TimeseriesBucket, error) {
	if err := uc.enforceSecurity.ReadMetrics(organizationId); err != nil {
		return nil, err
	}
	return uc.metricsReader.EventTimeseries(ctx, organizationId, window, bucket)
}
