package usecases

import (
	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/usecases/security"
)

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceLedgerSecurity() security.EnforceSecurityLedger {
	return &security.EnforceSecurityLedgerImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceConsentSecurity() security.EnforceSecurityConsent {
	return &security.EnforceSecurityConsentImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforcePurposeSecurity() security.EnforceSecurityPurpose {
	return &security.EnforceSecurityPurposeImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceRetentionPolicySecurity() security.EnforceSecurityRetentionPolicy {
	return &security.EnforceSecurityRetentionPolicyImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceRightsRequestSecurity() security.EnforceSecurityRightsRequest {
	return &security.EnforceSecurityRightsRequestImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceWebhookSecurity() security.EnforceSecurityWebhook {
	return &security.EnforceSecurityWebhookImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceUserSecurity() security.EnforceSecurityUser {
	return &security.EnforceSecurityUserImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceOrganizationSecurity() security.EnforceSecurityOrganization {
	return &security.EnforceSecurityOrganizationImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceApiKeySecurity() security.EnforceSecurityApiKey {
	return &security.EnforceSecurityApiKeyImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewAuditUsecase() AuditUsecase {
	return AuditUsecase{
		enforceSecurity: usecases.NewEnforceLedgerSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.LedgerRepository,
		verifier:        usecases.NewLedgerVerifier(),
		metricsReader:   usecases.NewLedgerMetricsReader(),
	}
}

func (usecases *UsecasesWithCreds) NewExportUsecase() ExportUsecase {
	return ExportUsecase{
		enforceSecurity:        usecases.NewEnforceLedgerSecurity(),
		executorFactory:        usecases.NewExecutorFactory(),
		repository:             usecases.Repositories.LedgerRepository,
		organizationRepository: usecases.Repositories.OrganizationRepository,
		writer:                 usecases.NewLedgerWriter(),
		credentials:            usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewConsentUsecase() ConsentUsecase {
	return ConsentUsecase{
		enforceSecurity:   usecases.NewEnforceConsentSecurity(),
		executorFactory:   usecases.NewExecutorFactory(),
		repository:        usecases.Repositories.ConsentRepository,
		purposeRepository: usecases.Repositories.PurposeRepository,
		writer:            usecases.NewLedgerWriter(),
		credentials:       usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewPurposeUsecase() PurposeUsecase {
	return PurposeUsecase{
		enforceSecurity: usecases.NewEnforcePurposeSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.PurposeRepository,
		writer:          usecases.NewLedgerWriter(),
		credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewRetentionPolicyUsecase() RetentionPolicyUsecase {
	return RetentionPolicyUsecase{
		enforceSecurity:   usecases.NewEnforceRetentionPolicySecurity(),
		executorFactory:   usecases.NewExecutorFactory(),
		repository:        usecases.Repositories.RetentionPolicyRepository,
		purposeRepository: usecases.Repositories.PurposeRepository,
		writer:            usecases.NewLedgerWriter(),
		credentials:       usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewRightsRequestUsecase() RightsRequestUsecase {
	return RightsRequestUsecase{
		enforceSecurity: usecases.NewEnforceRightsRequestSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.RightsRequestRepository,
		writer:          usecases.NewLedgerWriter(),
		credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewWebhookUsecase() WebhookUsecase {
	return WebhookUsecase{
		enforceSecurity: usecases.NewEnforceWebhookSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.WebhookRepository,
		writer:          usecases.NewLedgerWriter(),
		credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewUserUsecase() UserUsecase {
	return UserUsecase{
		enforceSecurity: usecases.NewEnforceUserSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.UserRepository,
		writer:          usecases.NewLedgerWriter(),
		credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewOrganizationUsecase() OrganizationUsecase {
	return OrganizationUsecase{
		enforceSecurity: usecases.NewEnforceOrganizationSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.OrganizationRepository,
		writer:          usecases.NewLedgerWriter(),
		credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewApiKeyUsecase() ApiKeyUsecase {
	return ApiKeyUsecase{
		enforceSecurity: usecases.NewEnforceApiKeySecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.ApiKeyRepository,
		writer:          usecases.NewLedgerWriter(),
		credentials:     usecases.Credentials,
	}
}
