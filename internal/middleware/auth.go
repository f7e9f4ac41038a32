package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"goal-board-api/internal/response"
)

// Auth returns a middleware that validates HS256 bearer tokens and stores
// the authenticated user ID in the context under "user_id"
func Auth(jwtSecret string) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		userID, err := subject(claims)
		if err != nil {
			abortUnauthorized(c, "Invalid user ID in token")
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// subject reads the user ID from "sub", falling back to "user_id"
func subject(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, err := claims.GetSubject()
	if err != nil || raw == "" {
		if uid, ok := claims["user_id"].(string); ok {
			raw = uid
		}
	}
	return uuid.Parse(raw)
}

func abortUnauthorized(c *gin.Context, message string) {
	response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, message)
	c.Abort()
}
