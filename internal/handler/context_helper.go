package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/student-assist-api/internal/middleware"
	"github.com/campushub/student-assist-api/internal/models"
)

// claimsFromContext extracts the token claims the JWT middleware stored, or
// nil when the route was reached without authentication.
func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	if claims, ok := value.(*models.JWTClaims); ok {
		return claims
	}
	return nil
}
