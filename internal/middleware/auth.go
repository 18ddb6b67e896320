package middleware

import (
	"net/http"
	"strings"

	"quiz-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by Auth for downstream handlers.
const (
	UserIDKey = "user_id"
	EmailKey  = "email"
)

// Auth rejects requests without a valid `Authorization: Bearer <token>`
// header and stores the token's identity claims on the context.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := auth.Parse(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}
