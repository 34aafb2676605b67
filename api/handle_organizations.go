package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/consentvault/consentvault-backend/dto"
	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/pure_utils"
	"github.com/consentvault/consentvault-backend/usecases"
)

func handleListOrganizations(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		organizationUsecase := usecasesWithCreds(ctx, uc).NewOrganizationUsecase()
		organizations, err := organizationUsecase.ListOrganizations(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"organizations": pure_utils.Map(organizations, dto.AdaptOrganizationDto),
		})
	}
}

func handleGetOrganization(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId := c.Param("organization_id")

		organizationUsecase := usecasesWithCreds(ctx, uc).NewOrganizationUsecase()
		organization, err := organizationUsecase.GetOrganization(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"organization": dto.AdaptOrganizationDto(organization),
		})
	}
}

func handlePostOrganization(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateOrganizationBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		organizationUsecase := usecasesWithCreds(ctx, uc).NewOrganizationUsecase()
		organization, err := organizationUsecase.CreateOrganization(ctx, models.CreateOrganizationInput{
			Name: body.Name,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"organization": dto.AdaptOrganizationDto(organization),
		})
	}
}

func handlePatchOrganization(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId := c.Param("organization_id")

		var body dto.UpdateOrganizationBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		input := models.UpdateOrganizationInput{
			Id:   organizationId,
			Name: body.Name,
		}
		if body.Status != nil {
			status := models.OrganizationStatus(*body.Status)
			input.Status = &status
		}

		organizationUsecase := usecasesWithCreds(ctx, uc).NewOrganizationUsecase()
		organization, err := organizationUsecase.UpdateOrganization(ctx, input)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"organization": dto.AdaptOrganizationDto(organization),
		})
	}
}
