package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/consentvault/consentvault-backend/dto"
	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/pure_utils"
	"github.com/consentvault/consentvault-backend/usecases"
	"github.com/consentvault/consentvault-backend/utils"
)

func handleListApiKeys(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		apiKeyUsecase := usecasesWithCreds(ctx, uc).NewApiKeyUsecase()
		apiKeys, err := apiKeyUsecase.ListApiKeys(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"api_keys": pure_utils.Map(apiKeys, dto.AdaptApiKeyDto),
		})
	}
}

func handlePostApiKey(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.CreateApiKeyBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		apiKeyUsecase := usecasesWithCreds(ctx, uc).NewApiKeyUsecase()
		apiKey, err := apiKeyUsecase.CreateApiKey(ctx, models.CreateApiKeyInput{
			OrganizationId: organizationId,
			Name:           body.Name,
			Role:           models.RoleFromString(body.Role),
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"api_key": dto.AdaptCreatedApiKeyDto(apiKey),
		})
	}
}

func handleDeleteApiKey(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		apiKeyId := c.Param("api_key_id")

		apiKeyUsecase := usecasesWithCreds(ctx, uc).NewApiKeyUsecase()
		if err := apiKeyUsecase.DeleteApiKey(ctx, apiKeyId); presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
