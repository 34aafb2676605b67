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

func handleListRetentionPolicies(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		policyUsecase := usecasesWithCreds(ctx, uc).NewRetentionPolicyUsecase()
		policies, err := policyUsecase.ListRetentionPolicies(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"retention_policies": pure_utils.Map(policies, dto.AdaptRetentionPolicyDto),
		})
	}
}

func handleGetRetentionPolicy(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		policyId := c.Param("policy_id")

		policyUsecase := usecasesWithCreds(ctx, uc).NewRetentionPolicyUsecase()
		policy, err := policyUsecase.GetRetentionPolicy(ctx, policyId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"retention_policy": dto.AdaptRetentionPolicyDto(policy),
		})
	}
}

func handlePostRetentionPolicy(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.CreateRetentionPolicyBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		policyUsecase := usecasesWithCreds(ctx, uc).NewRetentionPolicyUsecase()
		policy, err := policyUsecase.CreateRetentionPolicy(ctx, models.CreateRetentionPolicyInput{
			OrganizationId: organizationId,
			PurposeId:      body.PurposeId,
			RetentionDays:  body.RetentionDays,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"retention_policy": dto.AdaptRetentionPolicyDto(policy),
		})
	}
}

func handlePatchRetentionPolicy(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		policyId := c.Param("policy_id")

		var body dto.UpdateRetentionPolicyBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		policyUsecase := usecasesWithCreds(ctx, uc).NewRetentionPolicyUsecase()
		policy, err := policyUsecase.UpdateRetentionPolicy(ctx, models.UpdateRetentionPolicyInput{
			Id:            policyId,
			RetentionDays: body.RetentionDays,
			Active:        body.Active,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"retention_policy": dto.AdaptRetentionPolicyDto(policy),
		})
	}
}
