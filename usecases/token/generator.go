package token

import (
	"context"
	"crypto/sha256"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
)

const TokenLifetime = time.Hour

type generatorRepository interface {
	GetApiKeyByHash(ctx context.Context, exec repositories.Executor, hash []byte) (models.ApiKey, error)
	UserByEmail(ctx context.Context, exec repositories.Executor, email string) (models.User, error)
}

type encoder interface {
	EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error)
}

type executorProvider interface {
	NewExecutor() repositories.Executor
}

// Generator exchanges an api key for a short-lived session token carrying
// the key's credentials.
type Generator struct {
	executorFactory executorProvider
	repository      generatorRepository
	encoder         encoder
	tokenLifetime   time.Duration
}

func NewGenerator(
	executorFactory executorProvider,
	repository generatorRepository,
	encoder encoder,
) Generator {
	return Generator{
		executorFactory: executorFactory,
		repository:      repository,
		encoder:         encoder,
		tokenLifetime:   TokenLifetime,
	}
}

// CredentialsFromApiKey resolves a clear-text api key into its credentials,
// for requests authenticating with the key directly.
func (g Generator) CredentialsFromApiKey(ctx context.Context, apiKey string) (models.Credentials, error) {
	hash := sha256.Sum256([]byte(apiKey))
	key, err := g.repository.GetApiKeyByHash(ctx, g.executorFactory.NewExecutor(), hash[:])
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			err = errors.Wrap(models.UnAuthorizedError, "unknown api key")
		}
		return models.Credentials{}, err
	}
	return key.IntoCredentials(), nil
}

func (g Generator) FromApiKey(ctx context.Context, apiKey string) (string, time.Time, models.Credentials, error) {
	credentials, err := g.CredentialsFromApiKey(ctx, apiKey)
	if err != nil {
		return "", time.Time{}, models.Credentials{}, err
	}

	expirationTime := time.Now().Add(g.tokenLifetime)
	token, err := g.encoder.EncodeToken(expirationTime, credentials)
	if err != nil {
		return "", time.Time{}, models.Credentials{}, errors.Wrap(err, "error encoding token")
	}
	return token, expirationTime, credentials, nil
}
