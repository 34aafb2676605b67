package api

import (
	"github.com/gin-gonic/gin"

	"github.com/consentvault/consentvault-backend/api/middleware"
	"github.com/consentvault/consentvault-backend/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases, auth Authentication) {
	r.GET("/liveness", handleLivenessProbe(uc))
	r.POST("/token", handlePostToken(uc))

	router := r.Use(auth.Middleware, middleware.NewRequestFingerprint())

	router.GET("/credentials", handleGetCredentials())

	router.GET("/audit-entries", handleListAuditEntries(uc))
	router.GET("/audit-entries/verification", handleVerifyChain(uc))
	router.GET("/audit-entries/metrics", handleLedgerMetrics(uc))
	router.GET("/audit-entries/timeseries", handleEventTimeseries(uc))
	router.GET("/audit-entries/export", handleExportAuditEntries(uc, false))
	router.GET("/audit-entries/export/signed", handleExportAuditEntries(uc, true))
	router.POST("/audit-entries/verify-payload", handleVerifyPayload(uc))
	router.POST("/audit-entries/hash", handleComputePayloadHash(uc))
	router.POST("/audit-entries/export/verify-signature", handleVerifyExportSignature(uc))
	router.GET("/audit-entries/:entry_id", handleGetAuditEntry(uc))

	router.GET("/consents", handleListConsents(uc))
	router.POST("/consents", handleRecordConsent(uc))
	router.GET("/consents/:consent_id", handleGetConsent(uc))

	router.GET("/purposes", handleListPurposes(uc))
	router.POST("/purposes", handlePostPurpose(uc))
	router.GET("/purposes/:purpose_id", handleGetPurpose(uc))
	router.PATCH("/purposes/:purpose_id", handlePatchPurpose(uc))

	router.GET("/retention-policies", handleListRetentionPolicies(uc))
	router.POST("/retention-policies", handlePostRetentionPolicy(uc))
	router.GET("/retention-policies/:policy_id", handleGetRetentionPolicy(uc))
	router.PATCH("/retention-policies/:policy_id", handlePatchRetentionPolicy(uc))

	router.GET("/rights-requests", handleListRightsRequests(uc))
	router.POST("/rights-requests", handlePostRightsRequest(uc))
	router.GET("/rights-requests/:request_id", handleGetRightsRequest(uc))
	router.PATCH("/rights-requests/:request_id", handlePatchRightsRequest(uc))

	router.GET("/webhooks", handleListWebhooks(uc))
	router.POST("/webhooks", handlePostWebhook(uc))
	router.GET("/webhooks/:webhook_id", handleGetWebhook(uc))
	router.PATCH("/webhooks/:webhook_id", handlePatchWebhook(uc))
	router.DELETE("/webhooks/:webhook_id", handleDeleteWebhook(uc))

	router.GET("/users", handleListUsers(uc))
	router.POST("/users", handlePostUser(uc))
	router.GET("/users/:user_id", handleGetUser(uc))
	router.PATCH("/users/:user_id", handlePatchUser(uc))
	router.DELETE("/users/:user_id", handleDeleteUser(uc))

	router.GET("/organizations", handleListOrganizations(uc))
	router.POST("/organizations", handlePostOrganization(uc))
	router.GET("/organizations/:organization_id", handleGetOrganization(uc))
	router.PATCH("/organizations/:organization_id", handlePatchOrganization(uc))

	router.GET("/apikeys", handleListApiKeys(uc))
	router.POST("/apikeys", handlePostApiKey(uc))
	router.DELETE("/apikeys/:api_key_id", handleDeleteApiKey(uc))
}
