package token

import (
	"context"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
)

type fakeGeneratorRepository struct {
	keys map[[32]byte]models.ApiKey
}

func (r fakeGeneratorRepository) GetApiKeyByHash(ctx context.Context,
	exec repositories.Executor, hash []byte,
) (models.ApiKey, error) {
	var k [32]byte
	copy(k[:], hash)
	key, ok := r.keys[k]
	if !ok {
		return models.ApiKey{}, errors.Wrap(models.NotFoundError, "api key")
	}
	return key, nil
}

func (r fakeGeneratorRepository) UserByEmail(ctx context.Context,
	exec repositories.Executor, email string,
) (models.User, error) {
	return models.User{}, errors.Wrap(models.NotFoundError, "user")
}

type fakeEncoder struct {
	token string
	err   error
}

func (e fakeEncoder) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	return e.token, e.err
}

type fakeExecutorProvider struct{}

func (fakeExecutorProvider) NewExecutor() repositories.Executor { return nil }

func TestGeneratorFromApiKey(t *testing.T) {
	apiKey := models.ApiKey{
		Id:             "key-id",
		OrganizationId: "org-id",
		Name:           "backend",
		Role:           models.ADMIN,
	}
	repo := fakeGeneratorRepository{keys: map[[32]byte]models.ApiKey{
		sha256.Sum256([]byte("clear-key")): apiKey,
	}}

	t.Run("known key", func(t *testing.T) {
		g := NewGenerator(fakeExecutorProvider{}, repo, fakeEncoder{token: "jwt"})

		token, expiration, creds, err := g.FromApiKey(context.Background(), "clear-key")
		require.NoError(t, err)
		assert.Equal(t, "jwt", token)
		assert.WithinDuration(t, time.Now().Add(TokenLifetime), expiration, time.Minute)
		assert.Equal(t, "org-id", creds.OrganizationId)
		assert.Equal(t, models.ADMIN, creds.Role)
		assert.Equal(t, "key-id", creds.ActorIdentity.ApiKeyId)
	})

	t.Run("unknown key is unauthorized, not not-found", func(t *testing.T) {
		g := NewGenerator(fakeExecutorProvider{}, repo, fakeEncoder{token: "jwt"})

		_, _, _, err := g.FromApiKey(context.Background(), "wrong-key")
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})

	t.Run("encoder failure", func(t *testing.T) {
		g := NewGenerator(fakeExecutorProvider{}, repo, fakeEncoder{err: errors.New("boom")})

		_, _, _, err := g.FromApiKey(context.Background(), "clear-key")
		assert.Error(t, err)
	})
}

func TestGeneratorCredentialsFromApiKey(t *testing.T) {
	repo := fakeGeneratorRepository{keys: map[[32]byte]models.ApiKey{
		sha256.Sum256([]byte("clear-key")): {Id: "key-id", OrganizationId: "org-id", Role: models.VIEWER},
	}}
	g := NewGenerator(fakeExecutorProvider{}, repo, fakeEncoder{})

	creds, err := g.CredentialsFromApiKey(context.Background(), "clear-key")
	require.NoError(t, err)
	assert.Equal(t, models.VIEWER, creds.Role)
	assert.Equal(t, "org-id", creds.OrganizationId)
}
