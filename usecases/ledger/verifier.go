package ledger

import (
	"context"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
)

// VerifierRowBudget caps how many entries one verification walks. Dashboards
// call the verifier on every load, so an unbounded scan over a large tenant
// would be a liability.
const VerifierRowBudget = 10_000

const verifierPageSize = 1000

type ledgerVerifierRepository interface {
	ListAuditEntries(ctx context.Context, exec repositories.Executor,
		filters models.AuditEntryFilters, pagination models.Pagination, ascending bool) ([]models.AuditEntry, error)
}

// Verifier walks an organization's chain oldest-first, recomputing every
// entry hash against its predecessor.
type Verifier struct {
	executorFactory executor_factory.ExecutorFactory
	repository      ledgerVerifierRepository
	rowBudget       int
}

func NewVerifier(
	executorFactory executor_factory.ExecutorFactory,
	repository ledgerVerifierRepository,
) Verifier {
	return Verifier{
		executorFactory: executorFactory,
		repository:      repository,
		rowBudget:       VerifierRowBudget,
	}
}

// VerifyChain checks the whole chain from the genesis anchor. Entries after
// the first break are not counted: without a trusted predecessor their
// hashes prove nothing.
func (v Verifier) VerifyChain(ctx context.Context, organizationId string) (models.VerificationReport, error) {
	exec := v.executorFactory.NewExecutor()

	report := models.VerificationReport{OrganizationId: organizationId}
	prevHash := GenesisHash(organizationId)

	offset := 0
	for report.CheckedCount < v.rowBudget {
		pageSize := min(verifierPageSize, v.rowBudget-report.CheckedCount)
		entries, err := v.repository.ListAuditEntries(ctx, exec,
			models.AuditEntryFilters{OrganizationId: organizationId},
			models.Pagination{Limit: pageSize, Offset: offset},
			true)
		if err != nil {
			return models.VerificationReport{}, err
		}
		if len(entries) == 0 {
			return report, nil
		}
		offset += len(entries)

		for _, entry := range entries {
			report.CheckedCount++

			expected, err := ComputeEntryHash(prevHash, entry)
			if err != nil {
				return models.VerificationReport{}, err
			}
			if expected != entry.EntryHash || entry.PrevHash != prevHash {
				idx := report.CheckedCount
				report.FirstBreakIndex = &idx
				report.FirstBreakId = entry.Id
				return report, nil
			}

			report.OkCount++
			prevHash = entry.EntryHash
		}

		if len(entries) < pageSize {
			return report, nil
		}
	}

	report.Truncated = true
	return report, nil
}
