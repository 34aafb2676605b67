package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
)

type fakeEntryLister struct {
	entries []models.AuditEntry
}

func (f fakeEntryLister) ListAuditEntries(ctx context.Context, exec repositories.Executor,
	filters models.AuditEntryFilters, pagination models.Pagination, ascending bool,
) ([]models.AuditEntry, error) {
	start := min(pagination.Offset, len(f.entries))
	end := min(start+pagination.Limit, len(f.entries))
	return f.entries[start:end], nil
}

func buildChain(t *testing.T, organizationId string, length int) []models.AuditEntry {
	t.Helper()

	entries := make([]models.AuditEntry, 0, length)
	prev := GenesisHash(organizationId)
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := range length {
		entry := models.AuditEntry{
			Id:             fmt.Sprintf("entry-%d", i+1),
			OrganizationId: organizationId,
			ActorRef:       "user-1",
			EventType:      models.EventConsentGranted,
			ObjectType:     "consent",
			ObjectId:       fmt.Sprintf("consent-%d", i+1),
			PrevHash:       prev,
			CreatedAt:      at.Add(time.Duration(i) * time.Minute),
		}
		hash, err := ComputeEntryHash(prev, entry)
		require.NoError(t, err)
		entry.EntryHash = hash
		entries = append(entries, entry)
		prev = hash
	}
	return entries
}

func TestVerifyChain(t *testing.T) {
	const orgId = "org-1"

	newVerifier := func(entries []models.AuditEntry, rowBudget int) Verifier {
		return Verifier{
			executorFactory: executor_factory.NewExecutorFactoryStub(),
			repository:      fakeEntryLister{entries: entries},
			rowBudget:       rowBudget,
		}
	}

	t.Run("empty chain reports zero checked, not broken", func(t *testing.T) {
		report, err := newVerifier(nil, VerifierRowBudget).VerifyChain(t.Context(), orgId)
		require.NoError(t, err)

		assert.Zero(t, report.CheckedCount)
		assert.Nil(t, report.FirstBreakIndex)
		assert.Zero(t, report.Rate())
	})

	t.Run("intact chain verifies fully", func(t *testing.T) {
		entries := buildChain(t, orgId, 42)

		report, err := newVerifier(entries, VerifierRowBudget).VerifyChain(t.Context(), orgId)
		require.NoError(t, err)

		assert.Equal(t, 42, report.CheckedCount)
		assert.Equal(t, 42, report.OkCount)
		assert.Nil(t, report.FirstBreakIndex)
		assert.False(t, report.Truncated)
		assert.Equal(t, 1.0, report.Rate())
	})

	t.Run("tampered entry breaks the chain at its position", func(t *testing.T) {
		entries := buildChain(t, orgId, 10)
		entries[6].ObjectId = "rewritten"

		report, err := newVerifier(entries, VerifierRowBudget).VerifyChain(t.Context(), orgId)
		require.NoError(t, err)

		require.NotNil(t, report.FirstBreakIndex)
		assert.Equal(t, 7, *report.FirstBreakIndex)
		assert.Equal(t, "entry-7", report.FirstBreakId)
		assert.Equal(t, 7, report.CheckedCount)
		assert.Equal(t, 6, report.OkCount)
	})

	t.Run("relinked prev hash is detected even with a valid-looking entry hash", func(t *testing.T) {
		entries := buildChain(t, orgId, 5)
		// re-anchor entry 4 on entry 2, recomputing its hash so it is
		// self-consistent but inconsistent with its true predecessor
		entries[3].PrevHash = entries[1].EntryHash
		hash, err := ComputeEntryHash(entries[3].PrevHash, entries[3])
		require.NoError(t, err)
		entries[3].EntryHash = hash

		report, err := newVerifier(entries, VerifierRowBudget).VerifyChain(t.Context(), orgId)
		require.NoError(t, err)

		require.NotNil(t, report.FirstBreakIndex)
		assert.Equal(t, 4, *report.FirstBreakIndex)
	})

	t.Run("stops at the row budget and reports truncation", func(t *testing.T) {
		entries := buildChain(t, orgId, 30)

		report, err := newVerifier(entries, 20).VerifyChain(t.Context(), orgId)
		require.NoError(t, err)

		assert.True(t, report.Truncated)
		assert.Equal(t, 20, report.CheckedCount)
		assert.Equal(t, 20, report.OkCount)
		assert.Nil(t, report.FirstBreakIndex)
	})

	t.Run("chain from another organization does not verify", func(t *testing.T) {
		entries := buildChain(t, "org-2", 3)

		report, err := newVerifier(entries, VerifierRowBudget).VerifyChain(t.Context(), orgId)
		require.NoError(t, err)

		require.NotNil(t, report.FirstBreakIndex)
		assert.Equal(t, 1, *report.FirstBreakIndex)
		assert.Zero(t, report.OkCount)
	})
}
