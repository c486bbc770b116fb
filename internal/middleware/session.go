package middleware

import (
	"strings"

	"crypto_compass_backend/internal/util"
	"crypto_compass_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionMiddleware accepts a session token from the Authorization header
// or the token query parameter.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseSessionToken(tokenString, secret)
		if err != nil {
			logger.Log.Debug("Rejected session token", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.ContextSessionKey, claims)
		c.Next()
	}
}
