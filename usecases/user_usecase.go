package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases/executor_factory"
	"github.com/consentvault/consentvault-backend/usecases/ledger"
	"github.com/consentvault/consentvault-backend/usecases/security"
)

type UserUsecase struct {
	enforceSecurity security.EnforceSecurityUser
	executorFactory executor_factory.ExecutorFactory
	repository      repositories.UserRepository
	writer          ledger.Writer
	credentials     models.Credentials
}

func (uc UserUsecase) GetUser(ctx context.Context, userId string) (models.User, error) {
	user, err := uc.repository.UserById(ctx, uc.executorFactory.NewExecutor(), userId)
	if err != nil {
		return models.User{}, err
	}
	if err := uc.enforceSecurity.ReadUser(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (uc UserUsecase) ListUsers(ctx context.Context, organizationId string) ([]models.User, error) {
	if err := uc.enforceSecurity.ListUsers(organizationId); err != nil {
		return nil, err
	}
	return uc.repository.UsersOfOrganization(ctx, uc.executorFactory.NewExecutor(), organizationId)
}

func (uc UserUsecase) CreateUser(ctx context.Context, input models.CreateUser) (models.User, error) {
	if err := uc.enforceSecurity.CreateUser(input); err != nil {
		return models.User{}, err
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" {
		return models.User{}, errors.Wrap(models.BadParameterError, "email is required")
	}
	if input.Role == models.NO_ROLE {
		return models.User{}, errors.Wrap(models.BadParameterError, "a role is required")
	}

	userId := uuid.NewString()
	_, err := uc.writer.AppendWithMutation(ctx, input.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventUserCreated,
			ObjectType: "user",
			ObjectId:   userId,
			StatusCode: 201,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.CreateUser(ctx, tx, userId, input)
		})
	if repositories.IsUniqueViolationError(err) {
		return models.User{}, errors.Wrapf(models.ConflictError,
			"a user with email %s already exists", input.Email)
	}
	if err != nil {
		return models.User{}, err
	}

	return uc.GetUser(ctx, userId)
}

func (uc UserUsecase) UpdateUser(ctx context.Context, input models.UpdateUser) (models.User, error) {
	user, err := uc.repository.UserById(ctx, uc.executorFactory.NewExecutor(), input.Id)
	if err != nil {
		return models.User{}, err
	}
	if err := uc.enforceSecurity.UpdateUser(user, input); err != nil {
		return models.User{}, err
	}

	_, err = uc.writer.AppendWithMutation(ctx, user.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventUserUpdated,
			ObjectType: "user",
			ObjectId:   user.Id,
			StatusCode: 200,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.UpdateUser(ctx, tx, input)
		})
	if err != nil {
		return models.User{}, err
	}

	return uc.GetUser(ctx, user.Id)
}

func (uc UserUsecase) DeleteUser(ctx context.Context, userId string) error {
	user, err := uc.repository.UserById(ctx, uc.executorFactory.NewExecutor(), userId)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.DeleteUser(user); err != nil {
		return err
	}

	_, err = uc.writer.AppendWithMutation(ctx, user.OrganizationId,
		models.AuditEntryFields{
			ActorRef:   uc.credentials.ActorRef(),
			EventType:  models.EventUserDeleted,
			ObjectType: "user",
			ObjectId:   user.Id,
			StatusCode: 204,
		},
		func(tx repositories.Transaction) error {
			return uc.repository.DeleteUser(ctx, tx, user.Id)
		})
	return err
}
