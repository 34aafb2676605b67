package ledger

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/oklog/ulid/v2"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
	"github.com/consentvault/consentvault-backend/utils"
)

const (
	appendMaxAttempts = 5
	appendRetryDelay  = 20 * time.Millisecond
)

type ledgerWriterRepository interface {
	GetChainHead(ctx context.Context, exec repositories.Executor, organizationId string) (models.ChainHead, error)
	CreateChainHead(ctx context.Context, exec repositories.Executor, head models.ChainHead) error
	AppendAuditEntry(ctx context.Context, tx repositories.Transaction, entry models.AuditEntry, expectedSeq int64) error
}

// Writer is the single append path of the audit ledger. Every compliance
// mutation goes through it, inside the same transaction as the mutation
// itself where the caller provides one.
type Writer struct {
	executorFactory executor_factory.ExecutorFactory
	repository      ledgerWriterRepository
}

func NewWriter(
	executorFactory executor_factory.ExecutorFactory,
	repository ledgerWriterRepository,
) Writer {
	return Writer{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

// MutationFn runs inside the append transaction, before the ledger entry is
// written. It must be safe to re-run: a lost head race rolls the transaction
// back and retries the whole thing.
type MutationFn func(tx repositories.Transaction) error

// Append builds the next entry of the organization's chain and commits it
// with a compare-and-swap on the head pointer. Lost races are retried with
// backoff; exhaustion surfaces ErrLedgerWriteConflict to the caller.
func (w Writer) Append(ctx context.Context, organizationId string,
	fields models.AuditEntryFields,
) (models.AuditEntry, error) {
	return w.AppendWithMutation(ctx, organizationId, fields, nil)
}

// AppendWithMutation commits a compliance mutation and its audit entry
// atomically: either both land or neither does.
func (w Writer) AppendWithMutation(ctx context.Context, organizationId string,
	fields models.AuditEntryFields, mutate MutationFn,
) (models.AuditEntry, error) {
	logger := utils.LoggerFromContext(ctx)

	var appended models.AuditEntry
	err := retry.Do(
		func() error {
			entry, err := w.appendOnce(ctx, organizationId, fields, mutate)
			if err != nil {
				return err
			}
			appended = entry
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(appendMaxAttempts),
		retry.Delay(appendRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, models.ErrLedgerWriteConflict)
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.DebugContext(ctx, "audit chain append lost a race, retrying",
				"organization_id", organizationId,
				"attempt", n+1)
		}),
	)
	if err != nil {
		return models.AuditEntry{}, err
	}
	return appended, nil
}

func (w Writer) appendOnce(ctx context.Context, organizationId string,
	fields models.AuditEntryFields, mutate MutationFn,
) (models.AuditEntry, error) {
	var appended models.AuditEntry
	err := w.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if mutate != nil {
			if err := mutate(tx); err != nil {
				return err
			}
		}

		head, err := w.readOrInitHead(ctx, tx, organizationId)
		if err != nil {
			return err
		}

		if fields.RequestFingerprint == "" {
			fields.RequestFingerprint = utils.RequestFingerprintFromCtx(ctx)
		}

		entry := models.AuditEntry{
			Id:                 ulid.Make().String(),
			OrganizationId:     organizationId,
			ActorRef:           fields.ActorRef,
			EventType:          fields.EventType,
			ObjectType:         fields.ObjectType,
			ObjectId:           fields.ObjectId,
			RequestFingerprint: fields.RequestFingerprint,
			StatusCode:         fields.StatusCode,
			PrevHash:           head.EntryHash,
			CreatedAt:          time.Now().UTC(),
		}
		entry.EntryHash, err = ComputeEntryHash(head.EntryHash, entry)
		if err != nil {
			return err
		}

		if err := w.repository.AppendAuditEntry(ctx, tx, entry, head.Seq); err != nil {
			return err
		}
		appended = entry
		return nil
	})
	if err != nil {
		return models.AuditEntry{}, err
	}
	return appended, nil
}

// readOrInitHead lazily creates the head row at the organization's genesis
// anchor. Two writers racing on the first append both pass the insert race
// (unique violation falls back to a read), then settle it on the CAS.
func (w Writer) readOrInitHead(ctx context.Context, tx repositories.Transaction,
	organizationId string,
) (models.ChainHead, error) {
	head, err := w.repository.GetChainHead(ctx, tx, organizationId)
	if err == nil {
		return head, nil
	}
	if !errors.Is(err, models.NotFoundError) {
		return models.ChainHead{}, err
	}

	head = models.ChainHead{
		OrganizationId: organizationId,
		EntryHash:      GenesisHash(organizationId),
		Seq:            0,
	}
	if err := w.repository.CreateChainHead(ctx, tx, head); err != nil {
		if repositories.IsUniqueViolationError(err) {
			return models.ChainHead{}, errors.Wrap(models.ErrLedgerWriteConflict,
				"audit chain head created concurrently")
		}
		return models.ChainHead{}, err
	}
	return head, nil
}
