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

func handleListUsers(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		userUsecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		users, err := userUsecase.ListUsers(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"users": pure_utils.Map(users, dto.AdaptUserDto),
		})
	}
}

func handleGetUser(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId := c.Param("user_id")

		userUsecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		user, err := userUsecase.GetUser(ctx, userId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}

func handlePostUser(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.CreateUserBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		userUsecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		user, err := userUsecase.CreateUser(ctx, models.CreateUser{
			OrganizationId: organizationId,
			Email:          body.Email,
			Role:           models.RoleFromString(body.Role),
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}

func handlePatchUser(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId := c.Param("user_id")

		var body dto.UpdateUserBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		input := models.UpdateUser{Id: userId}
		if body.Role != nil {
			role := models.RoleFromString(*body.Role)
			input.Role = &role
		}

		userUsecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		user, err := userUsecase.UpdateUser(ctx, input)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}

func handleDeleteUser(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId := c.Param("user_id")

		userUsecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		if err := userUsecase.DeleteUser(ctx, userId); presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
