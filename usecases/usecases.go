package usecases

import (
	"context"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
	"github.com/consentvault/consentvault-backend/usecases/ledger"
	"github.com/consentvault/consentvault-backend/usecases/token"
)

type Usecases struct {
	Repositories  repositories.Repositories
	JwtRepository *repositories.JwtRepository
}

func NewUsecases(repos repositories.Repositories, jwtRepository *repositories.JwtRepository) Usecases {
	return Usecases{
		Repositories:  repos,
		JwtRepository: jwtRepository,
	}
}

func (usecases Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases Usecases) NewLedgerWriter() ledger.Writer {
	return ledger.NewWriter(usecases.NewExecutorFactory(), usecases.Repositories.LedgerRepository)
}

func (usecases Usecases) NewLedgerVerifier() ledger.Verifier {
	return ledger.NewVerifier(usecases.NewExecutorFactory(), usecases.Repositories.LedgerRepository)
}

func (usecases Usecases) NewLedgerMetricsReader() ledger.MetricsReader {
	return ledger.NewMetricsReader(
		usecases.NewExecutorFactory(),
		usecases.Repositories.LedgerRepository,
		usecases.NewLedgerVerifier(),
	)
}

func (usecases Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory: usecases.NewExecutorFactory(),
	}
}

func (usecases Usecases) NewTokenGenerator() token.Generator {
	return token.NewGenerator(
		usecases.NewExecutorFactory(),
		tokenGeneratorRepository{
			apiKeys: usecases.Repositories.ApiKeyRepository,
			users:   usecases.Repositories.UserRepository,
		},
		usecases.JwtRepository,
	)
}

func (usecases Usecases) NewUsecasesWithCreds(creds models.Credentials) UsecasesWithCreds {
	return UsecasesWithCreds{
		Usecases:    usecases,
		Credentials: creds,
	}
}

type tokenGeneratorRepository struct {
	apiKeys repositories.ApiKeyRepository
	users   repositories.UserRepository
}

func (r tokenGeneratorRepository) GetApiKeyByHash(ctx context.Context,
	exec repositories.Executor, hash []byte,
) (models.ApiKey, error) {
	return r.apiKeys.GetApiKeyByHash(ctx, exec, hash)
}

func (r tokenGeneratorRepository) UserByEmail(ctx context.Context,
	exec repositories.Executor, email string,
) (models.User, error) {
	return r.users.UserByEmail(ctx, exec, email)
}
