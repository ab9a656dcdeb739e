package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckAdmin guards the management routes. CheckAuth must run first so the
// admin flag is set.
func CheckAdmin(c *gin.Context) {
	isAdmin := c.MustGet("admin").(bool)

	if !isAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}
}
