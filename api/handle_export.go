package api

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/consentvault/consentvault-backend/dto"
	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/usecases"
	"github.com/consentvault/consentvault-backend/utils"
)

// handleExportAuditEntries streams the bundle content for plain exports, and
// returns a json envelope carrying content plus detached signature for signed
// ones.
func handleExportAuditEntries(uc usecases.Usecases, signed bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		filters, err := auditEntryFiltersFromRequest(c, organizationId)
		if presentBindError(c, err) {
			return
		}

		format := models.ExportFormat(c.DefaultQuery("format", string(models.ExportFormatCsv)))

		exportUsecase := usecasesWithCreds(ctx, uc).NewExportUsecase()
		bundle, err := exportUsecase.ExportAuditEntries(ctx, filters, format, signed)
		if presentError(ctx, c, err) {
			return
		}

		if signed {
			c.JSON(http.StatusOK, dto.AdaptSignedExportDto(bundle))
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, bundle.Filename))
		c.Data(http.StatusOK, bundle.Format.ContentType(), bundle.Content)
	}
}

func handleVerifyExportSignature(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.VerifyExportSignatureBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		content, err := base64.StdEncoding.DecodeString(body.Data)
		if err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, "data is not valid base64"))
			return
		}

		exportUsecase := usecasesWithCreds(ctx, uc).NewExportUsecase()
		err = exportUsecase.VerifyExportSignature(ctx, organizationId, content, body.Signature)
		if errors.Is(err, models.ErrExportSignatureInvalid) {
			c.JSON(http.StatusOK, dto.SignatureVerification{Valid: false})
			return
		}
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.SignatureVerification{Valid: true})
	}
}
