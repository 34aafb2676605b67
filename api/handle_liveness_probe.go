package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/consentvault/consentvault-backend/usecases"
)

func handleLivenessProbe(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewLivenessUsecase()
		if err := usecase.Liveness(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
