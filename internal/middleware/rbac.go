package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/student-assist-api/internal/models"
	appErrors "github.com/campushub/student-assist-api/pkg/errors"
	"github.com/campushub/student-assist-api/pkg/response"
)

// RequireRoles enforces role-based access control for routes.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claims := claimsFromContext(c)
		if claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if _, ok := allowed[claims.Role]; !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// MentorScope rejects requests whose :id path segment does not match the
// caller's mentor id claim. Runs after RequireRoles(RoleMentor).
func MentorScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFromContext(c)
		if claims == nil || claims.MentorID == nil || c.Param("id") != strconv.FormatInt(*claims.MentorID, 10) {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "mentor scope mismatch"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClassScope rejects requests whose :label path segment does not match the
// caller's assigned class claim.
func ClassScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFromContext(c)
		if claims == nil || claims.ClassAssigned == nil || c.Param("label") != *claims.ClassAssigned {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "class scope mismatch"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
