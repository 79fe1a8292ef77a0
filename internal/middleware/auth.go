package middleware

import (
	"strings"

	"github.com/creatorlab/creator-backend/internal/common"
	"github.com/creatorlab/creator-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// JWTAuth JWT authentication middleware
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, 401, "No token provided", nil)
			c.Abort()
			return
		}

		// 2. Parse Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, 401, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		tokenString := parts[1]

		// 3. Verify token
		claims, err := jwtManager.VerifyToken(tokenString)
		if err != nil {
			// Expired and malformed tokens get the same response.
			common.ErrorResponse(c, 401, "Invalid or expired token", err)
			c.Abort()
			return
		}

		// 4. Store user info in request context
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)

		c.Next()
	}
}

// GetUserID extracts the authenticated user id from context
func GetUserID(c *gin.Context) uint64 {
	userID, exists := c.Get("userID")
	if !exists {
		return 0
	}
	if id, ok := userID.(uint64); ok {
		return id
	}
	return 0
}

// GetUserEmail extracts the authenticated user email from context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("userEmail")
	if !exists {
		return ""
	}
	if str, ok := email.(string); ok {
		return str
	}
	return ""
}
