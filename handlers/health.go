package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "tasknest-api"

// RegisterHealth mounts the always-succeeding health probe.
func RegisterHealth(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	})
}
