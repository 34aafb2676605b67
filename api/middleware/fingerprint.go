package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/consentvault/consentvault-backend/utils"
)

// NewRequestFingerprint hashes (method, path, query, actor) into an opaque
// fingerprint recorded on the audit entries a request produces. Identical
// submissions by the same actor share a fingerprint, which is what makes
// duplicates correlatable on the ledger.
func NewRequestFingerprint() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		sum := sha256.Sum256(fmt.Appendf(nil, "%s %s?%s|%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Request.URL.RawQuery,
			creds.ActorRef(),
		))
		fingerprint := hex.EncodeToString(sum[:16])

		c.Request = c.Request.WithContext(
			utils.StoreRequestFingerprintInContext(ctx, fingerprint))
		c.Next()
	}
}
