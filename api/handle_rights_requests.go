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

func handleListRightsRequests(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var pagination dto.Pagination
		if err := c.ShouldBindQuery(&pagination); presentBindError(c, err) {
			return
		}

		var status *models.RightsRequestStatus
		if s := c.Query("status"); s != "" {
			requestStatus := models.RightsRequestStatus(s)
			status = &requestStatus
		}

		requestUsecase := usecasesWithCreds(ctx, uc).NewRightsRequestUsecase()
		requests, err := requestUsecase.ListRightsRequests(ctx, organizationId, status, pagination.ToModel())
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"rights_requests": pure_utils.Map(requests, dto.AdaptRightsRequestDto),
		})
	}
}

func handleGetRightsRequest(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		requestId := c.Param("request_id")

		requestUsecase := usecasesWithCreds(ctx, uc).NewRightsRequestUsecase()
		request, err := requestUsecase.GetRightsRequest(ctx, requestId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"rights_request": dto.AdaptRightsRequestDto(request),
		})
	}
}

func handlePostRightsRequest(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.CreateRightsRequestBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		requestUsecase := usecasesWithCreds(ctx, uc).NewRightsRequestUsecase()
		request, err := requestUsecase.CreateRightsRequest(ctx, models.CreateRightsRequestInput{
			OrganizationId: organizationId,
			ExternalUserId: body.ExternalUserId,
			Right:          models.DataRight(body.Right),
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"rights_request": dto.AdaptRightsRequestDto(request),
		})
	}
}

func handlePatchRightsRequest(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		requestId := c.Param("request_id")

		var body dto.UpdateRightsRequestBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		requestUsecase := usecasesWithCreds(ctx, uc).NewRightsRequestUsecase()
		request, err := requestUsecase.UpdateRightsRequestStatus(ctx, models.UpdateRightsRequestInput{
			Id:     requestId,
			Status: models.RightsRequestStatus(body.Status),
			Reason: body.Reason,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"rights_request": dto.AdaptRightsRequestDto(request),
		})
	}
}
