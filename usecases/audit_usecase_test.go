package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/usecases/ledger"
	"github.com/consentvault/consentvault-backend/usecases/security"
)

func auditUsecaseForRole(role models.Role, organizationId string) AuditUsecase {
	creds := models.Credentials{
		OrganizationId: organizationId,
		Role:           role,
	}
	return AuditUsecase{
		enforceSecurity: &security.EnforceSecurityLedgerImpl{
			EnforceSecurity: &security.EnforceSecurityImpl{Credentials: creds},
			Credentials:     creds,
		},
	}
}

func TestComputePayloadHash(t *testing.T) {
	const orgId = "org-1"
	createdAt := time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
	fields := models.AuditEntryFields{
		ActorRef:           "user:alice",
		EventType:          "consent.recorded",
		ObjectType:         "consent",
		ObjectId:           "consent-42",
		RequestFingerprint: "abcd1234",
	}
	prevHash := ledger.GenesisHash(orgId)

	t.Run("matches the hash the writer would store", func(t *testing.T) {
		uc := auditUsecaseForRole(models.AUDITOR, orgId)

		got, err := uc.ComputePayloadHash(context.Background(), orgId, fields, prevHash, createdAt)
		require.NoError(t, err)

		want, err := ledger.ComputeEntryHash(prevHash, models.AuditEntry{
			OrganizationId:     orgId,
			ActorRef:           fields.ActorRef,
			EventType:          fields.EventType,
			ObjectType:         fields.ObjectType,
			ObjectId:           fields.ObjectId,
			RequestFingerprint: fields.RequestFingerprint,
			CreatedAt:          createdAt,
		})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("changing the payload changes the hash", func(t *testing.T) {
		uc := auditUsecaseForRole(models.AUDITOR, orgId)

		original, err := uc.ComputePayloadHash(context.Background(), orgId, fields, prevHash, createdAt)
		require.NoError(t, err)

		tampered := fields
		tampered.ObjectId = "consent-43"
		other, err := uc.ComputePayloadHash(context.Background(), orgId, tampered, prevHash, createdAt)
		require.NoError(t, err)

		assert.NotEqual(t, original, other)
	})

	t.Run("requires the chain verification permission", func(t *testing.T) {
		uc := auditUsecaseForRole(models.VIEWER, orgId)

		_, err := uc.ComputePayloadHash(context.Background(), orgId, fields, prevHash, createdAt)
		assert.ErrorIs(t, err, models.ForbiddenError)
	})
}
