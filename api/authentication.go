package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/usecases"
	"github.com/consentvault/consentvault-backend/utils"
)

func ParseApiKeyHeader(header http.Header) string {
	return strings.TrimSpace(header.Get("X-API-Key"))
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", nil
	}

	authHeader := strings.Split(authorization, "Bearer ")
	if len(authHeader) != 2 {
		return "", errors.Wrap(models.UnAuthorizedError, "malformed Authorization header")
	}
	return strings.TrimSpace(authHeader[1]), nil
}

func wrapErrInUnAuthorizedError(err error) error {
	// An absent, expired or malformed credential is a 401, whatever the
	// underlying cause.
	if errors.Is(err, models.UnAuthorizedError) {
		return err
	}
	return errors.Join(models.UnAuthorizedError, err)
}

type Authentication struct {
	uc usecases.Usecases
}

func NewAuthentication(uc usecases.Usecases) Authentication {
	return Authentication{uc: uc}
}

// Middleware resolves the request credentials from either a Bearer session
// token or a raw api key, and stores them in the request context along with a
// logger enriched with the actor's identity.
func (a Authentication) Middleware(c *gin.Context) {
	ctx := c.Request.Context()

	jwtToken, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if presentError(ctx, c, err) {
		c.Abort()
		return
	}

	var creds models.Credentials
	switch {
	case jwtToken != "":
		creds, err = a.uc.JwtRepository.ValidateToken(jwtToken)
	case ParseApiKeyHeader(c.Request.Header) != "":
		creds, err = a.uc.NewTokenGenerator().CredentialsFromApiKey(ctx,
			ParseApiKeyHeader(c.Request.Header))
	default:
		err = errors.Wrap(models.UnAuthorizedError, "missing credentials")
	}
	if err != nil {
		presentError(ctx, c, wrapErrInUnAuthorizedError(err))
		c.Abort()
		return
	}

	newContext := utils.StoreCredentialsInContext(ctx, creds)

	if attr, ok := identityAttr(creds.ActorIdentity); ok {
		logger := utils.LoggerFromContext(newContext).
			With(attr).
			With(slog.String("role", creds.Role.String()))
		newContext = utils.StoreLoggerInContext(newContext, logger)
	}

	c.Request = c.Request.WithContext(newContext)
	c.Next()
}

func identityAttr(identity models.Identity) (attr slog.Attr, ok bool) {
	if identity.ApiKeyName != "" {
		return slog.String("api_key_name", identity.ApiKeyName), true
	}
	if identity.Email != "" {
		return slog.String("email", identity.Email), true
	}
	return slog.Attr{}, false
}
