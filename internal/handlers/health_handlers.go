package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz reports the storefront as up and whether the backend answers /api/health.
func (h *Handlers) Healthz(c *gin.Context) {
	if err := h.API.Health(c.Request.Context()); err != nil {
		h.Log.WithError(err).Warn("backend health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "backend": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": "ok"})
}
