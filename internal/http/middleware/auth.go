// README: Firebase bearer token auth middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travelpro/internal/infra"
)

const callerUIDKey = "caller_uid"

// Auth verifies the Authorization bearer token and stores the caller uid on
// the request context. A nil verifier disables auth entirely, which is how
// local development runs.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	if verifier == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(callerUIDKey, token.UID)
		c.Next()
	}
}

// CallerUID returns the authenticated uid, or "" when auth is disabled.
func CallerUID(c *gin.Context) string {
	uid, _ := c.Get(callerUIDKey)
	s, _ := uid.(string)
	return s
}
