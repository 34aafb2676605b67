package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/consentvault/consentvault-backend/models"
)

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func ExecBuilder(ctx context.Context, exec Executor, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "can't build sql query")
	}

	_, err = exec.Exec(ctx, sql, args...)
	if IsLedgerAppendOnlyError(err) {
		return errors.Wrap(models.ErrLedgerAppendOnly, "rejected by the audit_entries_append_only trigger")
	}
	return errors.Wrap(err, "error executing sql query")
}

func ForEachRow(
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	fn func(row pgx.CollectableRow) error,
) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return errors.Wrap(err, "error executing sql query")
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}

	return errors.Wrap(rows.Err(), "error iterating over rows")
}

// SqlToListOfModels executes the query and adapts every row through the
// dbmodel adapter.
func SqlToListOfModels[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Model, error) {
		dbModel, err := pgx.RowToStructByName[DBModel](row)
		if err != nil {
			var zeroModel Model
			return zeroModel, errors.Wrap(err, fmt.Sprintf("error scanning row to struct %T", dbModel))
		}
		return adapter(dbModel)
	})
}

// SqlToOptionalModel returns nil when the query matches no row.
func SqlToOptionalModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (*Model, error) {
	modelsList, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return nil, err
	}

	if len(modelsList) == 0 {
		return nil, nil
	}
	model := modelsList[0]
	if len(modelsList) > 1 {
		return nil, errors.Newf("expected 1 or 0 %T, got %d rows", model, len(modelsList))
	}
	return &model, nil
}

// SqlToModel returns a NotFoundError when the query matches no row.
func SqlToModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	model, err := SqlToOptionalModel(ctx, exec, query, adapter)
	var zeroModel Model
	if err != nil {
		return zeroModel, err
	}
	if model == nil {
		return zeroModel, errors.Wrap(models.NotFoundError, fmt.Sprintf("found no object of type %T", zeroModel))
	}
	return *model, nil
}
