package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/utils"
)

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error",
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
	_ = c.Error(err)
	return true
}

// presentBindError is for gin binding failures, which are not wrapped in our
// error sentinels.
func presentBindError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	return true
}
