package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
)

type LivenessUsecase struct {
	executorFactory executor_factory.ExecutorFactory
}

func (uc LivenessUsecase) Liveness(ctx context.Context) error {
	_, err := uc.executorFactory.NewExecutor().Exec(ctx, "SELECT 1")
	return errors.Wrap(err, "database is not reachable")
}
