package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tasknest/tasknest-api/pkg/metrics"
)

// RequestMetrics counts finished requests by method, route template and status.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
