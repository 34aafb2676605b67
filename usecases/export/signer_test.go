package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consentvault/consentvault-backend/models"
)

var testOrganization = models.Organization{
	Id:           "11111111-1111-1111-1111-111111111111",
	Name:         "acme",
	ExportSecret: "topsecret",
}

func testEntries() []models.AuditEntry {
	return []models.AuditEntry{
		{
			Id:             "entry-1",
			OrganizationId: testOrganization.Id,
			ActorRef:       "user-1",
			EventType:      models.EventConsentGranted,
			ObjectType:     "consent",
			ObjectId:       "consent-1",
			StatusCode:     201,
			PrevHash:       "aaaa",
			EntryHash:      "bbbb",
			CreatedAt:      time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		},
		{
			Id:             "entry-2",
			OrganizationId: testOrganization.Id,
			EventType:      models.EventConsentWithdrawn,
			ObjectType:     "consent",
			ObjectId:       "consent-1",
			PrevHash:       "bbbb",
			EntryHash:      "cccc",
			CreatedAt:      time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestMakeBundle(t *testing.T) {
	var signer Signer
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("signed bundle round-trips through verification", func(t *testing.T) {
		bundle, err := signer.MakeBundle(testOrganization, testEntries(),
			models.ExportFormatCsv, true, now)
		require.NoError(t, err)

		assert.Equal(t, "audit_export_11111111-1111-1111-1111-111111111111_20250314T120000Z.csv",
			bundle.Filename)
		assert.Equal(t, bundle.Filename+".sig", bundle.SignatureFilename)
		assert.NoError(t, VerifySignature(testOrganization.ExportSecret,
			bundle.Content, bundle.Signature))
	})

	t.Run("unsigned bundle carries no signature", func(t *testing.T) {
		bundle, err := signer.MakeBundle(testOrganization, testEntries(),
			models.ExportFormatCsv, false, now)
		require.NoError(t, err)

		assert.Empty(t, bundle.Signature)
		assert.Empty(t, bundle.SignatureFilename)
	})

	t.Run("serialization is deterministic", func(t *testing.T) {
		b1, err := signer.MakeBundle(testOrganization, testEntries(), models.ExportFormatJson, true, now)
		require.NoError(t, err)
		b2, err := signer.MakeBundle(testOrganization, testEntries(), models.ExportFormatJson, true, now)
		require.NoError(t, err)

		assert.Equal(t, b1.Content, b2.Content)
		assert.Equal(t, b1.Signature, b2.Signature)
	})

	t.Run("json export is parseable and complete", func(t *testing.T) {
		bundle, err := signer.MakeBundle(testOrganization, testEntries(),
			models.ExportFormatJson, false, now)
		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(bundle.Content, &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "entry-1", decoded[0]["id"])
		assert.Equal(t, "2025-03-14T09:26:53Z", decoded[0]["created_at"])
	})

	t.Run("csv export has a header and one line per entry", func(t *testing.T) {
		bundle, err := signer.MakeBundle(testOrganization, testEntries(),
			models.ExportFormatCsv, false, now)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(bundle.Content)), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "id,organization_id,"))
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		_, err := signer.MakeBundle(testOrganization, testEntries(), "xml", true, now)
		assert.ErrorIs(t, err, models.ErrUnknownExportFormat)
	})
}

func TestVerifySignature(t *testing.T) {
	content := []byte("canonical content")
	signature := Sign("secret", content)

	t.Run("accepts a valid signature", func(t *testing.T) {
		assert.NoError(t, VerifySignature("secret", content, signature))
	})

	t.Run("rejects a flipped content byte", func(t *testing.T) {
		tampered := append([]byte{}, content...)
		tampered[0] ^= 0x01
		assert.ErrorIs(t, VerifySignature("secret", tampered, signature),
			models.ErrExportSignatureInvalid)
	})

	t.Run("rejects the wrong secret", func(t *testing.T) {
		assert.ErrorIs(t, VerifySignature("other", content, signature),
			models.ErrExportSignatureInvalid)
	})

	t.Run("rejects a non-hex signature", func(t *testing.T) {
		assert.ErrorIs(t, VerifySignature("secret", content, "not-hex"),
			models.ErrExportSignatureInvalid)
	})
}
