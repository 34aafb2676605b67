package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consentvault/consentvault-backend/models"
)

func TestGenesisHash(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		assert.Equal(t, GenesisHash("org-1"), GenesisHash("org-1"))
	})

	t.Run("differs per organization", func(t *testing.T) {
		assert.NotEqual(t, GenesisHash("org-1"), GenesisHash("org-2"))
	})
}

func TestComputeEntryHash(t *testing.T) {
	entry := models.AuditEntry{
		OrganizationId: "11111111-1111-1111-1111-111111111111",
		ActorRef:       "user-1",
		EventType:      models.EventConsentGranted,
		ObjectType:     "consent",
		ObjectId:       "consent-1",
		CreatedAt:      time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	t.Run("is deterministic", func(t *testing.T) {
		h1, err := ComputeEntryHash(GenesisHash(entry.OrganizationId), entry)
		require.NoError(t, err)
		h2, err := ComputeEntryHash(GenesisHash(entry.OrganizationId), entry)
		require.NoError(t, err)
		assert.Equal(t, h1, h2)
		assert.Len(t, h1, 64)
	})

	t.Run("depends on the previous hash", func(t *testing.T) {
		h1, err := ComputeEntryHash("a", entry)
		require.NoError(t, err)
		h2, err := ComputeEntryHash("b", entry)
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("depends on every hashed field", func(t *testing.T) {
		prev := GenesisHash(entry.OrganizationId)
		base, err := ComputeEntryHash(prev, entry)
		require.NoError(t, err)

		mutations := map[string]models.AuditEntry{}

		m := entry
		m.ActorRef = "user-2"
		mutations["actor_ref"] = m

		m = entry
		m.EventType = models.EventConsentWithdrawn
		mutations["event_type"] = m

		m = entry
		m.ObjectId = "consent-2"
		mutations["object_id"] = m

		m = entry
		m.ObjectType = "purpose"
		mutations["object_type"] = m

		m = entry
		m.CreatedAt = entry.CreatedAt.Add(time.Second)
		mutations["created_at"] = m

		m = entry
		m.RequestFingerprint = "fp"
		mutations["request_fingerprint"] = m

		for field, mutated := range mutations {
			h, err := ComputeEntryHash(prev, mutated)
			require.NoError(t, err)
			assert.NotEqual(t, base, h, "mutating %s should change the hash", field)
		}
	})

	t.Run("ignores status code and ids", func(t *testing.T) {
		prev := GenesisHash(entry.OrganizationId)
		base, err := ComputeEntryHash(prev, entry)
		require.NoError(t, err)

		m := entry
		m.Id = "some-id"
		m.StatusCode = 500
		m.EntryHash = "bogus"
		h, err := ComputeEntryHash(prev, m)
		require.NoError(t, err)
		assert.Equal(t, base, h)
	})

	t.Run("normalizes timestamps to UTC", func(t *testing.T) {
		prev := GenesisHash(entry.OrganizationId)
		base, err := ComputeEntryHash(prev, entry)
		require.NoError(t, err)

		paris := time.FixedZone("CET", 3600)
		m := entry
		m.CreatedAt = entry.CreatedAt.In(paris)
		h, err := ComputeEntryHash(prev, m)
		require.NoError(t, err)
		assert.Equal(t, base, h)
	})
}
