package middleware

import (
	"net/http"
	"strings"

	"reisdesk/utils"

	"github.com/gin-gonic/gin"
)

// AgentAuthMiddleware validates the bearer token and stores the agent id on
// the context. Token issuance lives outside this service.
func AgentAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		agentID, err := utils.ExtractAgentIDFromToken(tokenString)
		if err != nil || agentID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("agentID", agentID)
		c.Next()
	}
}
