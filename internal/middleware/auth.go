package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/legalpulse/survey-api/pkg/jwt"
	"github.com/legalpulse/survey-api/pkg/logger"
	"go.uber.org/zap"
)

const (
	// AdminSubjectContextKey stores the authenticated admin subject in the request context
	AdminSubjectContextKey = "admin_subject"

	bearerPrefix = "Bearer "
)

// AdminAuthMiddleware requires an admin bearer token signed by tokenManager.
// A nil tokenManager leaves the routes open.
func AdminAuthMiddleware(tokenManager *jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenManager == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			rejectAdmin(c, "Missing authentication token", fmt.Errorf("missing bearer token"))
			return
		}

		claims, err := tokenManager.ValidateToken(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				rejectAdmin(c, "Token expired", err)
			} else {
				rejectAdmin(c, "Invalid authentication token", err)
			}
			return
		}

		if claims.Role != jwt.RoleAdmin {
			_ = c.Error(fmt.Errorf("role %q is not admin", claims.Role)) //nolint:errcheck
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}

		c.Set(AdminSubjectContextKey, claims.Subject)
		c.Next()
	}
}

func rejectAdmin(c *gin.Context, message string, err error) {
	logger.Warn("Admin authentication failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
		zap.Error(err),
	)
	_ = c.Error(err) //nolint:errcheck
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	c.Abort()
}
