package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes registers the health check endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}
