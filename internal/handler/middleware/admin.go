package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"seatbook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware routes admin calls through a bearer token issued at
// login. The token only identifies the session for the stateless HTTP
// layer; the admin controller's own LoggedIn state remains authoritative
// and still rejects calls after a logout.
type AdminMiddleware struct {
	tokenService *jwt.Service
}

func NewAdminMiddleware(tokenService *jwt.Service) *AdminMiddleware {
	return &AdminMiddleware{tokenService: tokenService}
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

		if _, err := m.tokenService.ValidateToken(token); err != nil {
			slog.Warn("Admin token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
