package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"spendwise/internal/token"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	UserIDKey = "userID"
	EmailKey  = "email"
)

// AuthMiddleware verifies the bearer access token and sets the user identity
// in the context. Every rejection carries a WWW-Authenticate: Bearer marker
// and the same uniform message, so token failures are indistinguishable.
func AuthMiddleware(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := issuer.Verify(parts[1])
		if err != nil {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		// Reject refresh tokens used as access tokens.
		if claims.TokenType != string(token.KindAccess) {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		userID, err := claims.SubjectID()
		if err != nil {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "INVALID_TOKEN",
			"message": message,
		},
	})
	c.Abort()
}
