package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesadeayuda/helpdesk-service/internal/access"
)

// CurrentSession echoes the resolved identity plus its landing page so the
// frontend can route straight after login.
func CurrentSession(c *gin.Context) {
	s := sessionFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"user_id": s.UserID,
		"email":   s.Email,
		"role":    s.Role,
		"area_id": s.AreaID,
		"landing": access.Landing(s.Role),
	})
}

// ResolveAccess computes the route decision for ?path=. The service only
// computes the target; the frontend router performs the navigation.
func ResolveAccess(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}
	s := sessionFrom(c)
	c.JSON(http.StatusOK, access.Resolve(s.Role, path))
}
