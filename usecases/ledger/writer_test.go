package ledger

import (
	"context"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
)

// fakeLedgerStore reproduces the repository's compare-and-swap semantics in
// memory, so writer races can be exercised without a database.
type fakeLedgerStore struct {
	mu      sync.Mutex
	heads   map[string]models.ChainHead
	entries map[string][]models.AuditEntry

	alwaysConflict bool
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{
		heads:   map[string]models.ChainHead{},
		entries: map[string][]models.AuditEntry{},
	}
}

func (s *fakeLedgerStore) GetChainHead(ctx context.Context, exec repositories.Executor,
	organizationId string,
) (models.ChainHead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	head, ok := s.heads[organizationId]
	if !ok {
		return models.ChainHead{}, errors.Wrap(models.NotFoundError, "no chain head")
	}
	return head, nil
}

func (s *fakeLedgerStore) CreateChainHead(ctx context.Context, exec repositories.Executor,
	head models.ChainHead,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heads[head.OrganizationId] = head
	return nil
}

func (s *fakeLedgerStore) AppendAuditEntry(ctx context.Context, tx repositories.Transaction,
	entry models.AuditEntry, expectedSeq int64,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alwaysConflict {
		return errors.Wrap(models.ErrLedgerWriteConflict, "forced conflict")
	}
	head := s.heads[entry.OrganizationId]
	if head.Seq != expectedSeq {
		return errors.Wrap(models.ErrLedgerWriteConflict, "head moved")
	}
	s.heads[entry.OrganizationId] = models.ChainHead{
		OrganizationId: entry.OrganizationId,
		EntryHash:      entry.EntryHash,
		Seq:            expectedSeq + 1,
	}
	s.entries[entry.OrganizationId] = append(s.entries[entry.OrganizationId], entry)
	return nil
}

func TestWriterAppend(t *testing.T) {
	const orgId = "org-1"
	fields := models.AuditEntryFields{
		ActorRef:   "user-1",
		EventType:  models.EventConsentGranted,
		ObjectType: "consent",
		ObjectId:   "consent-1",
		StatusCode: 201,
	}

	t.Run("first append anchors on the genesis hash", func(t *testing.T) {
		store := newFakeLedgerStore()
		writer := NewWriter(executor_factory.NewExecutorFactoryStub(), store)

		entry, err := writer.Append(t.Context(), orgId, fields)
		require.NoError(t, err)

		assert.Equal(t, GenesisHash(orgId), entry.PrevHash)
		assert.NotEmpty(t, entry.Id)
		assert.False(t, entry.CreatedAt.IsZero())

		expected, err := ComputeEntryHash(entry.PrevHash, entry)
		require.NoError(t, err)
		assert.Equal(t, expected, entry.EntryHash)
	})

	t.Run("appends chain onto each other", func(t *testing.T) {
		store := newFakeLedgerStore()
		writer := NewWriter(executor_factory.NewExecutorFactoryStub(), store)

		first, err := writer.Append(t.Context(), orgId, fields)
		require.NoError(t, err)
		second, err := writer.Append(t.Context(), orgId, fields)
		require.NoError(t, err)

		assert.Equal(t, first.EntryHash, second.PrevHash)
		assert.Equal(t, int64(2), store.heads[orgId].Seq)
	})

	t.Run("concurrent appends keep the chain consistent", func(t *testing.T) {
		store := newFakeLedgerStore()
		writer := NewWriter(executor_factory.NewExecutorFactoryStub(), store)

		const writers = 8
		var wg sync.WaitGroup
		errs := make([]error, writers)
		for i := range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = writer.Append(t.Context(), orgId, fields)
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, models.ErrLedgerWriteConflict)
			}
		}
		require.Positive(t, succeeded)

		entries := store.entries[orgId]
		require.Len(t, entries, succeeded)
		assert.Equal(t, int64(succeeded), store.heads[orgId].Seq)

		prev := GenesisHash(orgId)
		for _, entry := range entries {
			assert.Equal(t, prev, entry.PrevHash)
			expected, err := ComputeEntryHash(prev, entry)
			require.NoError(t, err)
			assert.Equal(t, expected, entry.EntryHash)
			prev = entry.EntryHash
		}
	})

	t.Run("runs the mutation in the append transaction", func(t *testing.T) {
		store := newFakeLedgerStore()
		writer := NewWriter(executor_factory.NewExecutorFactoryStub(), store)

		mutated := false
		entry, err := writer.AppendWithMutation(t.Context(), orgId, fields,
			func(tx repositories.Transaction) error {
				mutated = true
				return nil
			})
		require.NoError(t, err)
		assert.True(t, mutated)
		assert.Equal(t, GenesisHash(orgId), entry.PrevHash)
	})

	t.Run("a failing mutation aborts the append", func(t *testing.T) {
		store := newFakeLedgerStore()
		writer := NewWriter(executor_factory.NewExecutorFactoryStub(), store)

		_, err := writer.AppendWithMutation(t.Context(), orgId, fields,
			func(tx repositories.Transaction) error {
				return errors.New("mutation failed")
			})
		require.Error(t, err)
		assert.Empty(t, store.entries[orgId])
	})

	t.Run("surfaces the conflict after exhausting retries", func(t *testing.T) {
		store := newFakeLedgerStore()
		store.alwaysConflict = true
		writer := NewWriter(executor_factory.NewExecutorFactoryStub(), store)

		_, err := writer.Append(t.Context(), orgId, fields)
		assert.ErrorIs(t, err, models.ErrLedgerWriteConflict)
	})
}
