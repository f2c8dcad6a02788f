package middlewares

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/config"
	"github.com/videomotion/video-motion-api/entity"
	"github.com/videomotion/video-motion-api/utils"
)

// UserLoader is the slice of the user store the gateway needs.
type UserLoader interface {
	GetByID(id uuid.UUID) (*entity.User, error)
}

// TokenRevocations answers whether an access token id has been revoked.
type TokenRevocations interface {
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware validates the access token, rejects revoked tokens and
// attaches the authenticated user to the request context. The password
// hash and stored refresh token are stripped before the user is exposed
// to handlers.
func AuthMiddleware(users UserLoader, revocations TokenRevocations, cfg *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.ExtractAccessToken(c)
		if tokenStr == "" {
			abortUnauthorized(c, "Authorization token is required")
			return
		}

		parsedToken, err := utils.ParseAccessToken(tokenStr, cfg)
		if err != nil || !parsedToken.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := parsedToken.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		if jti := utils.TokenJTI(claims); jti != "" {
			revoked, err := revocations.IsTokenRevoked(c.Request.Context(), jti)
			if err != nil || revoked {
				abortUnauthorized(c, "Invalid or expired token")
				return
			}
		}

		userID, err := utils.UserIDFromClaims(claims)
		if err != nil {
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		user, err := users.GetByID(userID)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		stripped := *user
		stripped.Password = ""
		stripped.RefreshToken = ""

		c.Set("user", &stripped)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"statusCode": http.StatusUnauthorized,
		"message":    message,
		"success":    false,
		"errors":     []string{},
	})
	c.Abort()
}
