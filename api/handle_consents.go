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

func handleListConsents(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var filters dto.ConsentFilters
		if err := c.ShouldBindQuery(&filters); presentBindError(c, err) {
			return
		}
		var pagination dto.Pagination
		if err := c.ShouldBindQuery(&pagination); presentBindError(c, err) {
			return
		}

		modelFilters := models.ConsentFilters{
			OrganizationId: organizationId,
			ExternalUserId: filters.ExternalUserId,
			PurposeId:      filters.PurposeId,
		}
		if filters.Status != "" {
			status := models.ConsentStatus(filters.Status)
			modelFilters.Status = &status
		}

		consentUsecase := usecasesWithCreds(ctx, uc).NewConsentUsecase()
		consents, err := consentUsecase.ListConsents(ctx, modelFilters, pagination.ToModel())
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"consents": pure_utils.Map(consents, dto.AdaptConsentDto),
		})
	}
}

func handleGetConsent(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		consentId := c.Param("consent_id")

		consentUsecase := usecasesWithCreds(ctx, uc).NewConsentUsecase()
		consent, err := consentUsecase.GetConsent(ctx, consentId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"consent": dto.AdaptConsentDto(consent),
		})
	}
}

func handleRecordConsent(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.RecordConsentBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		consentUsecase := usecasesWithCreds(ctx, uc).NewConsentUsecase()
		consent, err := consentUsecase.RecordConsent(ctx, models.RecordConsentInput{
			OrganizationId: organizationId,
			ExternalUserId: body.ExternalUserId,
			PurposeId:      body.PurposeId,
			Status:         models.ConsentStatus(body.Status),
			Method:         models.ConsentMethod(body.Method),
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"consent": dto.AdaptConsentDto(consent),
		})
	}
}
