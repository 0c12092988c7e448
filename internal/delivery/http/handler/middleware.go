package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// requireAdmin extracts the bearer token and checks it against the
// static admin secret. Aborts with 401 before the route handler runs.
func (h *Handler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid authentication credentials"})
			return
		}

		if err := h.auth.VerifyToken(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid authentication credentials"})
			return
		}

		c.Next()
	}
}
