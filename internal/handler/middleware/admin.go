package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"studyspot/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware gates the admin panel routes. There are no admin accounts;
// a token issued against the shared secret carries the admin role claim.
type AdminMiddleware struct {
	jwt *jwt.Service
}

func NewAdminMiddleware(jwtService *jwt.Service) *AdminMiddleware {
	return &AdminMiddleware{jwt: jwtService}
}

func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Admin token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in admin middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if claims.Role != jwt.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
