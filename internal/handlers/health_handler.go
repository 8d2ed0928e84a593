package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports that the service is up
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} map[string]string "ok"
// @Router      /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
