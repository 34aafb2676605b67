package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consentvault/consentvault-backend/models"
)

func TestJwtRepositoryRoundTrip(t *testing.T) {
	repo := NewJwtRepository("test-signing-secret")
	creds := models.Credentials{
		OrganizationId: "org-id",
		Role:           models.AUDITOR,
		ActorIdentity: models.Identity{
			ApiKeyId:   "key-id",
			ApiKeyName: "backend",
		},
	}

	token, err := repo.EncodeToken(time.Now().Add(time.Hour), creds)
	require.NoError(t, err)

	decoded, err := repo.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, creds, decoded)
}

func TestJwtRepositoryRejects(t *testing.T) {
	repo := NewJwtRepository("test-signing-secret")

	t.Run("expired token", func(t *testing.T) {
		token, err := repo.EncodeToken(time.Now().Add(-time.Minute), models.Credentials{})
		require.NoError(t, err)

		_, err = repo.ValidateToken(token)
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJwtRepository("another-secret")
		token, err := other.EncodeToken(time.Now().Add(time.Hour), models.Credentials{})
		require.NoError(t, err)

		_, err = repo.ValidateToken(token)
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := repo.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})
}
