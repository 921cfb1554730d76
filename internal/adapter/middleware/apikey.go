package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/royalguard/activity-api/internal/adapter/presenter"
	"github.com/royalguard/activity-api/internal/domain/service"
)

// APIKeyHeader carries the shared secret on authenticated endpoints.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth rejects requests whose header does not present the
// configured secret. Endpoints that also accept the secret in the
// request body perform their own check instead of using this
// middleware.
func APIKeyAuth(gate *service.CredentialGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Authorize(c.GetHeader(APIKeyHeader)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				presenter.Error("Invalid or missing API key"))
			return
		}
		c.Next()
	}
}
