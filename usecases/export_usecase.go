package usecases

import (
	"context"
	"time"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
	"github.com/consentvault/consentvault-backend/usecases/export"
	"github.com/consentvault/consentvault-backend/usecases/security"
)

// exportRowLimit bounds one export bundle. Regulators asking for more than
// this should narrow the time window of the request.
const exportRowLimit = 50_000

type exportLedgerRepository interface {
	ListAuditEntries(ctx context.Context, exec repositories.Executor,
		filters models.AuditEntryFilters, pagination models.Pagination, ascending bool) ([]models.AuditEntry, error)
}

type exportOrganizationRepository interface {
	GetOrganizationById(ctx context.Context, exec repositories.Executor,
		organizationId string) (models.Organization, error)
}

type auditAppender interface {
	Append(ctx context.Context, organizationId string,
		fields models.AuditEntryFields) (models.AuditEntry, error)
}

type ExportUsecase struct {
	enforceSecurity        security.EnforceSecurityLedger
	executorFactory        executor_factory.ExecutorFactory
	repository             exportLedgerRepository
	organizationRepository exportOrganizationRepository
	signer                 export.Signer
	writer                 auditAppender
	credentials            models.Credentials
}

// ExportAuditEntries builds an export bundle and records the export itself on
// the ledger. Unsigned exports are recorded under their own event type so the
// dashboard can surface how much unverifiable evidence leaves the system.
func (uc ExportUsecase) ExportAuditEntries(ctx context.Context,
	filters models.AuditEntryFilters, format models.ExportFormat, signed bool,
) (models.ExportBundle, error) {
	if err := uc.enforceSecurity.ExportAuditEntries(filters.OrganizationId, signed); err != nil {
		return models.ExportBundle{}, err
	}

	exec := uc.executorFactory.NewExecutor()
	organization, err := uc.organizationRepository.GetOrganizationById(ctx, exec, filters.OrganizationId)
	if err != nil {
		return models.ExportBundle{}, err
	}

	entries, err := uc.repository.ListAuditEntries(ctx, exec, filters,
		models.Pagination{Limit: exportRowLimit}, true)
	if err != nil {
		return models.ExportBundle{}, err
	}

	bundle, err := uc.signer.MakeBundle(organization, entries, format, signed, time.Now())
	if err != nil {
		return models.ExportBundle{}, err
	}

	eventType := models.EventAuditExported
	if signed {
		eventType = models.EventAuditExportedSigned
	}
	_, err = uc.writer.Append(ctx, filters.OrganizationId, models.AuditEntryFields{
		ActorRef:   uc.credentials.ActorRef(),
		EventType:  eventType,
		ObjectType: "audit_export",
		ObjectId:   bundle.Filename,
		StatusCode: 200,
	})
	if err != nil {
		return models.ExportBundle{}, err
	}

	return bundle, nil
}

// VerifyExportSignature checks a previously downloaded bundle against the
// organization's current export secret.
func (uc ExportUsecase) VerifyExportSignature(ctx context.Context, organizationId string,
	content []byte, signature string,
) error {
	if err := uc.enforceSecurity.ExportAuditEntries(organizationId, true); err != nil {
		return err
	}

	organization, err := uc.organizationRepository.GetOrganizationById(ctx,
		uc.executorFactory.NewExecutor(), organizationId)
	if err != nil {
		return err
	}
	return export.VerifySignature(organization.ExportSecret, content, signature)
}
