package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories/dbmodels"
)

type UserRepository struct{}

func (repo UserRepository) UserById(ctx context.Context, exec Executor, userId string) (models.User, error) {
	return SqlToModel(
		ctx,
		exec,
		selectUsers().Where(squirrel.Eq{"id": userId}),
		dbmodels.AdaptUser,
	)
}

func (repo UserRepository) UserByEmail(ctx context.Context, exec Executor, email string) (models.User, error) {
	user, err := SqlToOptionalModel(
		ctx,
		exec,
		selectUsers().Where(squirrel.Eq{"email": email}),
		dbmodels.AdaptUser,
	)
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, errors.Wrapf(models.ErrUnknownUser, "email %s", email)
	}
	return *user, nil
}

func (repo UserRepository) UsersOfOrganization(ctx context.Context, exec Executor,
	organizationId string,
) ([]models.User, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectUsers().
			Where(squirrel.Eq{"organization_id": organizationId}).
			OrderBy("email ASC"),
		dbmodels.AdaptUser,
	)
}

func (repo UserRepository) CreateUser(ctx context.Context, exec Executor,
	newUserId string, input models.CreateUser,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_USERS).
			Columns("id", "organization_id", "email", "role").
			Values(newUserId, input.OrganizationId, input.Email, input.Role.String()),
	)
}

func (repo UserRepository) UpdateUser(ctx context.Context, exec Executor,
	input models.UpdateUser,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"id": input.Id})

	if input.Role != nil {
		query = query.Set("role", input.Role.String())
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo UserRepository) DeleteUser(ctx context.Context, exec Executor, userId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}),
	)
}

func selectUsers() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectUserColumns...).
		From(dbmodels.TABLE_USERS)
}
