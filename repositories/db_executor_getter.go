package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExecutorGetter struct {
	connectionPool *pgxpool.Pool
}

func NewExecutorGetter(pool *pgxpool.Pool) ExecutorGetter {
	return ExecutorGetter{
		connectionPool: pool,
	}
}

func (g ExecutorGetter) Transaction(
	ctx context.Context,
	fn func(tx Transaction) error,
) error {
	err := pgx.BeginFunc(ctx, g.connectionPool, func(tx pgx.Tx) error {
		return fn(PgTx{tx: tx})
	})
	return errors.Wrap(err, "error executing transaction")
}

func (g ExecutorGetter) GetExecutor() Executor {
	return PgExecutor{
		exec: g.connectionPool,
	}
}
