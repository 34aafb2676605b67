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

func handleListWebhooks(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		webhookUsecase := usecasesWithCreds(ctx, uc).NewWebhookUsecase()
		webhooks, err := webhookUsecase.ListWebhooks(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"webhooks": pure_utils.Map(webhooks, dto.AdaptWebhookDto),
		})
	}
}

func handleGetWebhook(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		webhookId := c.Param("webhook_id")

		webhookUsecase := usecasesWithCreds(ctx, uc).NewWebhookUsecase()
		webhook, err := webhookUsecase.GetWebhook(ctx, webhookId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"webhook": dto.AdaptWebhookDto(webhook),
		})
	}
}

func handlePostWebhook(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.CreateWebhookBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		webhookUsecase := usecasesWithCreds(ctx, uc).NewWebhookUsecase()
		webhook, err := webhookUsecase.CreateWebhook(ctx, models.CreateWebhookInput{
			OrganizationId: organizationId,
			Url:            body.Url,
			EventTypes:     body.EventTypes,
		})
		if presentError(ctx, c, err) {
			return
		}

		// The secret is returned once, at creation time.
		c.JSON(http.StatusCreated, gin.H{
			"webhook": dto.AdaptWebhookDto(webhook),
			"secret":  webhook.Secret,
		})
	}
}

func handlePatchWebhook(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		webhookId := c.Param("webhook_id")

		var body dto.UpdateWebhookBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		webhookUsecase := usecasesWithCreds(ctx, uc).NewWebhookUsecase()
		webhook, err := webhookUsecase.UpdateWebhook(ctx, models.UpdateWebhookInput{
			Id:         webhookId,
			Url:        body.Url,
			EventTypes: body.EventTypes,
			Active:     body.Active,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"webhook": dto.AdaptWebhookDto(webhook),
		})
	}
}

func handleDeleteWebhook(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		webhookId := c.Param("webhook_id")

		webhookUsecase := usecasesWithCreds(ctx, uc).NewWebhookUsecase()
		if err := webhookUsecase.DeleteWebhook(ctx, webhookId); presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
