package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthController struct{ version string }

func NewHealthController(version string) *HealthController {
	return &HealthController{version: version}
}

func (ctl *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"version":   ctl.version,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
