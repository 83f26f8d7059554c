package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/version"
)

// Version returns build metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
	})
}

// Health is the liveness probe used by the healthcheck binary.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
