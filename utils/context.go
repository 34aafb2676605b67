package utils

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/consentvault/consentvault-backend/models"
)

type ContextKey int

const (
	ContextKeyCredentials ContextKey = iota
	ContextKeyLogger
	ContextKeyRequestFingerprint
)

func RequestFingerprintFromCtx(ctx context.Context) string {
	fingerprint, _ := ctx.Value(ContextKeyRequestFingerprint).(string)
	return fingerprint
}

func StoreRequestFingerprintInContext(ctx context.Context, fingerprint string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestFingerprint, fingerprint)
}

func CredentialsFromCtx(ctx context.Context) models.Credentials {
	creds, _ := ctx.Value(ContextKeyCredentials).(models.Credentials)
	return creds
}

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, ContextKeyCredentials, creds)
}

// OrganizationIdFromRequest resolves the organization scope of a request from
// its credentials. Superadmins may select any organization through the
// organization-id query param; everyone else is pinned to the organization of
// their credential, never to a client-supplied value.
func OrganizationIdFromRequest(request *http.Request) (organizationId string, err error) {
	creds := CredentialsFromCtx(request.Context())

	requestOrganizationId := request.URL.Query().Get("organization-id")
	if requestOrganizationId != "" {
		if err := ValidateUuid(requestOrganizationId); err != nil {
			return "", err
		}
		if err := EnforceOrganizationAccess(creds, requestOrganizationId); err != nil {
			return "", err
		}
		return requestOrganizationId, nil
	}

	if creds.OrganizationId == "" {
		if creds.Role == models.SUPERADMIN {
			return "", fmt.Errorf(
				"an organization-id query param is required for SUPERADMIN on this endpoint: %w",
				models.BadParameterError)
		}
		return "", fmt.Errorf("credentials do not grant access to any organization: %w",
			models.ForbiddenError)
	}

	return creds.OrganizationId, nil
}

func ValidateUuid(uuidParam string) error {
	_, err := uuid.Parse(uuidParam)
	if err != nil {
		err = fmt.Errorf("'%s' is not a valid UUID: %w", uuidParam, models.BadParameterError)
	}
	return err
}

func StoreCredentialsInContextMiddleware(creds models.Credentials) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			StoreCredentialsInContext(c.Request.Context(), creds))
	}
}
