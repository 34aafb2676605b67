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

func auditEntryFiltersFromRequest(c *gin.Context, organizationId string) (models.AuditEntryFilters, error) {
	var filters dto.AuditEntryFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		return models.AuditEntryFilters{}, err
	}
	return models.AuditEntryFilters{
		OrganizationId: organizationId,
		EventType:      filters.EventType,
		ObjectType:     filters.ObjectType,
		Since:          filters.Since,
		Until:          filters.Until,
	}, nil
}

func handleListAuditEntries(uc usecases.Usecases) gin.HandlerFunc {
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

		var pagination dto.Pagination
		if err := c.ShouldBindQuery(&pagination); presentBindError(c, err) {
			return
		}

		auditUsecase := usecasesWithCreds(ctx, uc).NewAuditUsecase()
		entries, err := auditUsecase.ListAuditEntries(ctx, filters, pagination.ToModel())
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"audit_entries": pure_utils.Map(entries, dto.AdaptAuditEntryDto),
		})
	}
}

func handleGetAuditEntry(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		entryId := c.Param("entry_id")

		auditUsecase := usecasesWithCreds(ctx, uc).NewAuditUsecase()
		entry, err := auditUsecase.GetAuditEntry(ctx, entryId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"audit_entry": dto.AdaptAuditEntryDto(entry),
		})
	}
}

func handleVerifyChain(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		auditUsecase := usecasesWithCreds(ctx, uc).NewAuditUsecase()
		report, err := auditUsecase.VerifyChain(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"verification": dto.AdaptVerificationReportDto(report),
		})
	}
}

// handleVerifyPayload answers whether a given hash is a member of the
// organization's chain, for spot checks of previously exported evidence.
func handleVerifyPayload(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.VerifyPayloadBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		auditUsecase := usecasesWithCreds(ctx, uc).NewAuditUsecase()
		entry, valid, err := auditUsecase.VerifyEntryHash(ctx, organizationId, body.EntryHash)
		if presentError(ctx, c, err) {
			return
		}

		result := dto.PayloadVerification{Member: entry != nil, Valid: valid}
		if entry != nil {
			entryDto := dto.AdaptAuditEntryDto(*entry)
			result.Entry = &entryDto
		}
		c.JSON(http.StatusOK, result)
	}
}

// handleComputePayloadHash recomputes the hash a payload would carry at a
// given chain position, the counterpart of handleVerifyPayload for evidence
// the caller holds outside the ledger.
func handleComputePayloadHash(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var body dto.ComputeHashBody
		if err := c.ShouldBindJSON(&body); presentBindError(c, err) {
			return
		}

		auditUsecase := usecasesWithCreds(ctx, uc).NewAuditUsecase()
		entryHash, err := auditUsecase.ComputePayloadHash(ctx, organizationId,
			models.AuditEntryFields{
				ActorRef:           body.ActorRef,
				EventType:          body.EventType,
				ObjectType:         body.ObjectType,
				ObjectId:           body.ObjectId,
				RequestFingerprint: body.RequestFingerprint,
			}, body.PrevHash, body.CreatedAt)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"entry_hash": entryHash,
		})
	}
}

func handleLedgerMetrics(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		auditUsecase := usecasesWithCreds(ctx, uc).NewAuditUsecase()
		metrics, err := auditUsecase.DashboardMetrics(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"metrics": dto.AdaptLedgerMetricsDto(metrics),
		})
	}
}

func handleEventTimeseries(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		window := models.TimeseriesWindow(c.DefaultQuery("window", string(models.TimeseriesWindow24h)))
		bucket := models.TimeseriesBucketSize(c.DefaultQuery("bucket", string(models.TimeseriesBucketHour)))

		auditUsecase := usecasesWithCreds(ctx, uc).NewAuditUsecase()
		buckets, err := auditUsecase.EventTimeseries(ctx, organizationId, window, bucket)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"timeseries": pure_utils.Map(buckets, dto.AdaptTimeseriesBucketDto),
		})
	}
}
