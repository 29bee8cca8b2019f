package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"lead-console/internal/shared/response"
)

// BearerAuth checks the Authorization header against one opaque token. The
// stub backend does not mint or verify real credentials; an empty expected
// token disables the check entirely.
func BearerAuth(expectedToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expectedToken == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		if parts[1] != expectedToken {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Next()
	}
}
