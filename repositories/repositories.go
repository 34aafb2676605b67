package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter            ExecutorGetter
	LedgerRepository          LedgerRepository
	OrganizationRepository    OrganizationRepository
	UserRepository            UserRepository
	ApiKeyRepository          ApiKeyRepository
	ConsentRepository         ConsentRepository
	PurposeRepository         PurposeRepository
	RetentionPolicyRepository RetentionPolicyRepository
	RightsRequestRepository   RightsRequestRepository
	WebhookRepository         WebhookRepository
}

func NewRepositories(connectionPool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter: NewExecutorGetter(connectionPool),
	}
}
