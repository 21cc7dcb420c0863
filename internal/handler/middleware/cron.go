package middleware

import (
	"crypto/subtle"
	"net/http"

	"blueprint-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const cronTokenHeader = "X-Cron-Token"

// RequireCronToken guards the internal job endpoints. They are invoked by the
// platform cron, not by browsers, so the check is a shared secret header
// rather than a JWT.
func RequireCronToken(cfg config.SchedulerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(cronTokenHeader)
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.CronToken)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid cron token",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
