package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/route-presets
func GetRoutePresets(c *gin.Context) {
	c.JSON(http.StatusOK, tripService(c).Presets())
}

// DELETE /api/route-presets/:name
func DeleteRoutePreset(c *gin.Context) {
	if err := tripService(c).DeletePreset(c.Param("name")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
