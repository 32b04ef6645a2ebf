package ingest

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"leadsync_backend/platform/httpkit"
	"leadsync_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// SecretHeader carries the shared webhook secret on ingest requests.
const SecretHeader = "x-webhook-secret"

// SecretAuthMiddleware rejects requests whose secret header does not match
// the configured value. Both sides are hashed before comparison so the
// compare runs in constant time regardless of secret length.
func SecretAuthMiddleware(secret string, log *logger.Logger) gin.HandlerFunc {
	expected := sha256.Sum256([]byte(secret))

	return func(c *gin.Context) {
		provided := sha256.Sum256([]byte(c.GetHeader(SecretHeader)))
		if subtle.ConstantTimeCompare(expected[:], provided[:]) != 1 {
			log.IngestRejected("invalid webhook secret", c.ContentType(), c.ClientIP())
			httpkit.Error(c, http.StatusUnauthorized, "invalid webhook secret")
			c.Abort()
			return
		}
		c.Next()
	}
}

// BodySizeLimit caps the request body. Reads past the cap fail with
// *http.MaxBytesError, which the handler maps to 413.
func BodySizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
