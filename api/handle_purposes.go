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

func handleListPurposes(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		activeOnly := c.Query("active_only") == "true"

		purposeUsecase := usecasesWithCreds(ctx, uc).NewPurposeUsecase()
		purposes, err := purposeUsecase.ListPurposes(ctx, organizationId, activeOnly)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"purposes": pure_utils.Map(purposes, dto.AdaptPurposeDto),
		})
	}
}

func handleGetPurpose(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		purposeId := c.Param("purpose_id")

		purposeUsecase := usecasesWithCreds(ctx, uc).NewPurposeUsecase()
		purpose, err := purposeUsecase.GetPurpose(ctx, purposeId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"purpose": dto.AdaptPurposeDto(purpose),
		})
	}
}

func handlePostPurpose(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.CreatePurposeBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		purposeUsecase := usecasesWithCreds(ctx, uc).NewPurposeUsecase()
		purpose, err := purposeUsecase.CreatePurpose(ctx, models.CreatePurposeInput{
			OrganizationId: organizationId,
			Code:           body.Code,
			Description:    body.Description,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"purpose": dto.AdaptPurposeDto(purpose),
		})
	}
}

func handlePatchPurpose(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		purposeId := c.Param("purpose_id")

		var body dto.UpdatePurposeBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		purposeUsecase := usecasesWithCreds(ctx, uc).NewPurposeUsecase()
		purpose, err := purposeUsecase.UpdatePurpose(ctx, models.UpdatePurposeInput{
			Id:          purposeId,
			Description: body.Description,
			Active:      body.Active,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"purpose": dto.AdaptPurposeDto(purpose),
		})
	}
}
