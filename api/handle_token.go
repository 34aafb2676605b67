package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/consentvault/consentvault-backend/dto"
	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/usecases"
	"github.com/consentvault/consentvault-backend/utils"
)

// handlePostToken exchanges an api key for a short-lived session token.
func handlePostToken(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		apiKey := ParseApiKeyHeader(c.Request.Header)
		if apiKey == "" {
			presentError(ctx, c, errors.Wrap(models.UnAuthorizedError, "missing X-API-Key header"))
			return
		}

		generator := uc.NewTokenGenerator()
		token, expirationTime, _, err := generator.FromApiKey(ctx, apiKey)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_at":   expirationTime,
		})
	}
}

func handleGetCredentials() gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := utils.CredentialsFromCtx(c.Request.Context())

		c.JSON(http.StatusOK, gin.H{
			"credentials": dto.AdaptCredentialsDto(creds),
		})
	}
}
