package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adledger/internal/pkg/response"
)

// AdminOnly restricts a route group to the configured administrator id. It
// must run after GatewayAuth so user_id is already on the context.
func AdminOnly(adminID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		if adminID == 0 || userID != adminID {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this command")
			c.Abort()
			return
		}

		c.Next()
	}
}
