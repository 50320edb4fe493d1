// File: handlers/logger.go
package handlers

import (
	"reisdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger prefers a request-scoped logger placed on the context by
// middleware and falls back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get("logger"); ok {
		if logger, ok := v.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
